package species

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Match struct {
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	Family         string `json:"family"`
	ImageURL       string `json:"image_url,omitempty"`
}

type Client struct {
	endpoint string
	key      string
	httpc    *http.Client
}

func New(endpoint, key string) *Client {
	return &Client{endpoint: endpoint, key: key, httpc: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) Configured() bool { return c != nil && c.endpoint != "" }

// Search queries a Trefle-style plant database.
func (c *Client) Search(q string) ([]Match, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("species lookup not configured")
	}
	u := fmt.Sprintf("%s/api/v1/plants/search?q=%s", strings.TrimRight(c.endpoint, "/"), url.QueryEscape(q))
	req, _ := http.NewRequest("GET", u, nil)
	if c.key != "" {
		req.Header.Set("Authorization", "Bearer "+c.key)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("species: status %d", resp.StatusCode)
	}

	// some sources only serve an HTML results page
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return scrapeMatches(resp)
	}

	var out struct {
		Data []struct {
			CommonName     string `json:"common_name"`
			ScientificName string `json:"scientific_name"`
			Family         string `json:"family"`
			ImageURL       string `json:"image_url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}

	res := make([]Match, 0, len(out.Data))
	for _, d := range out.Data {
		res = append(res, Match{
			CommonName:     d.CommonName,
			ScientificName: d.ScientificName,
			Family:         d.Family,
			ImageURL:       d.ImageURL,
		})
	}
	return res, nil
}

// scrapeMatches pulls results out of an HTML listing. Scientific names are
// conventionally italicized; the enclosing item text carries the common name.
func scrapeMatches(resp *http.Response) ([]Match, error) {
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var res []Match
	seen := map[string]bool{}
	doc.Find("li i, li em, td i, td em").Each(func(_ int, s *goquery.Selection) {
		sci := strings.TrimSpace(s.Text())
		if sci == "" || seen[sci] {
			return
		}
		seen[sci] = true
		full := strings.TrimSpace(s.Closest("li,td").Text())
		common := strings.TrimSpace(strings.ReplaceAll(full, sci, ""))
		common = strings.Trim(common, " -–(),")
		res = append(res, Match{CommonName: common, ScientificName: sci})
	})
	return res, nil
}
