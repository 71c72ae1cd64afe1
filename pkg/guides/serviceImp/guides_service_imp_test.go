package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprout/entities"
	"sprout/pkg/guides/embedder"
)

type memGuides struct {
	seq    uint
	docs   map[uint]entities.GuideDoc
	chunks []entities.GuideChunk
}

func newMemGuides() *memGuides { return &memGuides{docs: map[uint]entities.GuideDoc{}} }

func (m *memGuides) CreateDoc(d *entities.GuideDoc) error {
	m.seq++
	d.DocID = m.seq
	m.docs[d.DocID] = *d
	return nil
}

func (m *memGuides) BulkInsertChunks(rows []entities.GuideChunk) error {
	m.chunks = append(m.chunks, rows...)
	return nil
}

func (m *memGuides) ListDocs() ([]entities.GuideDoc, error) {
	var out []entities.GuideDoc
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func (m *memGuides) AllChunks() ([]entities.GuideChunk, error) { return m.chunks, nil }

func (m *memGuides) DocsByIDs(ids []uint) (map[uint]entities.GuideDoc, error) {
	out := map[uint]entities.GuideDoc{}
	for _, id := range ids {
		if d, ok := m.docs[id]; ok {
			out[id] = d
		}
	}
	return out, nil
}

// unconfigured embedder exercises the keyword fallback path
func newSvc() (*Svc, *memGuides) {
	repo := newMemGuides()
	return New(repo, embedder.New("", "", "")), repo
}

func TestChunkTextSplitsOnNewlineAfterLimit(t *testing.T) {
	para := strings.Repeat("a", 600) + "\n"
	text := para + para + para

	parts := chunkText(text, 1000)
	require.Len(t, parts, 2)
	assert.True(t, strings.HasSuffix(parts[0], "\n"), "split happens at a line break")
}

func TestChunkTextShortInput(t *testing.T) {
	parts := chunkText("just one line", 1000)
	require.Len(t, parts, 1)
	assert.Equal(t, "just one line", parts[0])
}

func TestChunkTextEmpty(t *testing.T) {
	assert.Empty(t, chunkText("", 1000))
}

func TestUpsertDocumentStoresChunks(t *testing.T) {
	s, repo := newSvc()

	doc, n, err := s.UpsertDocument("Watering basics", "water", "water deeply but rarely\nlet soil dry", "https://example.org/w")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.NotZero(t, doc.DocID)
	assert.Equal(t, 1, n)
	require.Len(t, repo.chunks, 1)
	assert.Equal(t, doc.DocID, repo.chunks[0].DocID)
	assert.Empty(t, repo.chunks[0].Embedding, "no embedder configured")
}

func TestSearchKeywordFallbackRanksByTermHits(t *testing.T) {
	s, _ := newSvc()
	_, _, err := s.UpsertDocument("A", "", "fertilize monthly in spring", "")
	require.NoError(t, err)
	_, _, err = s.UpsertDocument("B", "", "water weekly, fertilize in spring and summer", "")
	require.NoError(t, err)
	_, _, err = s.UpsertDocument("C", "", "repot every two years", "")
	require.NoError(t, err)

	got, err := s.Search("fertilize spring water", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, got[0].Text, "water weekly", "chunk hitting all three terms ranks first")
}

func TestSearchNoHits(t *testing.T) {
	s, _ := newSvc()
	_, _, err := s.UpsertDocument("A", "", "repot every two years", "")
	require.NoError(t, err)

	got, err := s.Search("orchid humidity", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchEmptyQuery(t *testing.T) {
	s, _ := newSvc()
	got, err := s.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCosineRanking(t *testing.T) {
	a := []float32{1, 0, 0}
	b := []float32{1, 0, 0}
	c := []float32{0, 1, 0}
	assert.InDelta(t, 1.0, cosine(a, b), 1e-9)
	assert.InDelta(t, 0.0, cosine(a, c), 1e-9)
}

func TestEmbeddingRoundTrip(t *testing.T) {
	v := []float32{0.25, -1.5, 3.75}
	got := embedder.BytesToFloats(embedder.FloatsToBytes(v))
	assert.Equal(t, v, got)
}
