package sefaria

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultBaseURL is the Sefaria v3 texts endpoint
const DefaultBaseURL = "https://www.sefaria.org/api/v3/texts"

// Client fetches chapter texts from the Sefaria API. Fetched texts are kept
// in an in-memory cache; the catalog is static so entries never go stale.
// The cache is not synchronized: the bot drives all fetches from a single
// goroutine.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      map[string]*Text
}

// New creates a Sefaria client with the default endpoint
func New() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		cache:      make(map[string]*Text),
	}
}

// NewWithBaseURL creates a client against a custom endpoint (used in tests)
func NewWithBaseURL(baseURL string) *Client {
	c := New()
	c.baseURL = baseURL
	return c
}

// textResponse mirrors the fields we need from the v3 texts payload
type textResponse struct {
	Versions []struct {
		Text         json.RawMessage `json:"text"`
		VersionTitle string          `json:"versionTitle"`
		Language     string          `json:"language"`
	} `json:"versions"`
	HeRef      string `json:"heRef"`
	SectionRef string `json:"sectionRef"`
}

// Text is the Hebrew text of one reference
type Text struct {
	Hebrew []string
	HeRef  string
}

var refDigit = regexp.MustCompile(` (\d)`)

// refToURL converts a Sefaria ref to its URL form:
// "Mishnah Berakhot 1:1" -> "Mishnah_Berakhot.1.1"
func refToURL(ref string) string {
	s := refDigit.ReplaceAllString(ref, ".$1")
	s = strings.ReplaceAll(s, ":", ".")
	return strings.ReplaceAll(s, " ", "_")
}

// FetchText fetches the Hebrew text for a reference, consulting the cache
// first. A failed fetch never corrupts the cache.
func (c *Client) FetchText(sefariaRef string) (*Text, error) {
	if cached, ok := c.cache[sefariaRef]; ok {
		return cached, nil
	}

	text, err := c.fetch(sefariaRef)
	if err != nil {
		return nil, err
	}
	c.cache[sefariaRef] = text
	return text, nil
}

// FetchCommentary fetches a commentator's text on a reference. A missing
// commentary is not an error: not every mishnah has one, so the result
// degrades to empty text.
func (c *Client) FetchCommentary(sefariaRef, commentator string) (*Text, error) {
	if commentator == "" {
		commentator = "Bartenura"
	}
	commentaryRef := commentator + " on " + sefariaRef
	if cached, ok := c.cache[commentaryRef]; ok {
		return cached, nil
	}

	text, err := c.fetch(commentaryRef)
	if err != nil {
		text = &Text{Hebrew: nil, HeRef: commentaryRef}
	}
	c.cache[commentaryRef] = text
	return text, nil
}

// Prefetch warms the cache for upcoming lessons. Failures are swallowed;
// prefetching is best-effort.
func (c *Client) Prefetch(refs []string) {
	for _, ref := range refs {
		if _, ok := c.cache[ref]; ok {
			continue
		}
		if _, err := c.FetchText(ref); err != nil {
			continue
		}
	}
}

func (c *Client) fetch(sefariaRef string) (*Text, error) {
	url := fmt.Sprintf("%s/%s?version=hebrew|all", c.baseURL, refToURL(sefariaRef))
	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %v", sefariaRef, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: %s", sefariaRef, resp.Status)
	}

	var data textResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode response for %s: %v", sefariaRef, err)
	}

	text := &Text{HeRef: data.HeRef}
	if text.HeRef == "" {
		text.HeRef = sefariaRef
	}
	for _, v := range data.Versions {
		if v.Language != "he" {
			continue
		}
		text.Hebrew = decodeTextField(v.Text)
		break
	}
	return text, nil
}

// decodeTextField accepts both payload shapes: a single string for one
// mishnah, an array of strings for a chapter
func decodeTextField(raw json.RawMessage) []string {
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}
	}
	return nil
}

// Commentator is a supported commentary source
type Commentator struct {
	ID          string
	Name        string
	SefariaName string
}

// Commentators lists the commentaries the bot can show
var Commentators = []Commentator{
	{ID: "bartenura", Name: "ברטנורא", SefariaName: "Bartenura"},
	{ID: "tosafot_yom_tov", Name: "תוספות יום טוב", SefariaName: "Tosafot Yom Tov"},
	{ID: "rambam", Name: "רמב\"ם", SefariaName: "Rambam"},
}
