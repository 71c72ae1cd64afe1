package serviceImp

import (
	"math"
	"sort"
	"strings"

	"sprout/entities"
	"sprout/pkg/guides/embedder"
	"sprout/pkg/guides/repository"
)

type Svc struct {
	r   repository.GuidesRepository
	emb *embedder.Client
}

func New(r repository.GuidesRepository, e *embedder.Client) *Svc { return &Svc{r: r, emb: e} }

func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	parts := []string{}
	cur := strings.Builder{}
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *Svc) UpsertDocument(title, tags, text, sourceURL string) (*entities.GuideDoc, int, error) {
	d := &entities.GuideDoc{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.r.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chs := chunkText(text, 1000)
	if len(chs) == 0 {
		return d, 0, nil
	}

	var embs [][]float32
	if s.emb.Configured() {
		if v, err := s.emb.Embed(chs); err == nil {
			embs = v
		}
		// degrade gracefully: keep chunks with empty embeddings
	}

	rows := make([]entities.GuideChunk, len(chs))
	for i := range chs {
		var embBytes []byte
		if embs != nil && i < len(embs) {
			embBytes = embedder.FloatsToBytes(embs[i])
		}
		rows[i] = entities.GuideChunk{
			DocID:     d.DocID,
			Ord:       i,
			Text:      chs[i],
			Embedding: embBytes,
		}
	}

	if err := s.r.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *Svc) Search(query string, k int) ([]entities.GuideChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb.Configured() {
		if vec, err := s.emb.Embed([]string{q}); err == nil && len(vec) > 0 {
			qvec = vec[0]
		}
	}

	chunks, err := s.r.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.GuideChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))

	if len(qvec) > 0 {
		for _, ch := range chunks {
			chVec := embedder.BytesToFloats(ch.Embedding)
			if len(chVec) != len(qvec) {
				continue
			}
			if sc := cosine(qvec, chVec); sc > 0 {
				list = append(list, scored{ch: ch, sc: sc})
			}
		}
	} else {
		// keyword fallback: score by how many query terms the chunk contains
		terms := strings.Fields(strings.ToLower(q))
		for _, ch := range chunks {
			low := strings.ToLower(ch.Text)
			score := 0.0
			for _, t := range terms {
				if strings.Contains(low, t) {
					score++
				}
			}
			if score > 0 {
				list = append(list, scored{ch: ch, sc: score})
			}
		}
	}

	if len(list) == 0 {
		return nil, nil
	}
	sort.Slice(list, func(i, j int) bool { return list[i].sc > list[j].sc })

	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.GuideChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i] * b[i])
		na += float64(a[i] * a[i])
		nb += float64(b[i] * b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (s *Svc) DocsMeta(ids []uint) (map[uint]entities.GuideDoc, error) {
	return s.r.DocsByIDs(ids)
}
