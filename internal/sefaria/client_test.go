package sefaria

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefToURL(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"Mishnah Berakhot 1:1", "Mishnah_Berakhot.1.1"},
		{"Mishnah Berakhot 1:2-4", "Mishnah_Berakhot.1.2-4"},
		{"Mishnah Berakhot 2", "Mishnah_Berakhot.2"},
		{"Berakhot 2a", "Berakhot.2a"},
		{"Bartenura on Mishnah Peah 1:1", "Bartenura_on_Mishnah_Peah.1.1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, refToURL(tt.ref), "refToURL(%q)", tt.ref)
	}
}

func TestFetchText(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/Mishnah_Berakhot.1.1", r.URL.Path)
		assert.Equal(t, "hebrew|all", r.URL.Query().Get("version"))
		fmt.Fprint(w, `{
			"heRef": "משנה ברכות א׳:א׳",
			"versions": [
				{"language": "en", "text": "From when..."},
				{"language": "he", "text": "מאימתי קורין את שמע בערבין"}
			]
		}`)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	text, err := c.FetchText("Mishnah Berakhot 1:1")
	require.NoError(t, err)
	assert.Equal(t, "משנה ברכות א׳:א׳", text.HeRef)
	assert.Equal(t, []string{"מאימתי קורין את שמע בערבין"}, text.Hebrew)
	assert.Equal(t, 1, requests)

	// second fetch is served from the cache
	again, err := c.FetchText("Mishnah Berakhot 1:1")
	require.NoError(t, err)
	assert.Same(t, text, again)
	assert.Equal(t, 1, requests)
}

func TestFetchTextChapterArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"versions": [{"language": "he", "text": ["משנה א", "משנה ב"]}]}`)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	text, err := c.FetchText("Mishnah Berakhot 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"משנה א", "משנה ב"}, text.Hebrew)
	// heRef falls back to the requested ref when the payload omits it
	assert.Equal(t, "Mishnah Berakhot 1", text.HeRef)
}

func TestFetchTextServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	_, err := c.FetchText("Mishnah Nowhere 1:1")
	require.Error(t, err)

	// errors are not cached; a later success lands normally
	assert.Empty(t, c.cache)
}

func TestFetchCommentary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Bartenura_on_Mishnah_Berakhot.1.1", r.URL.Path)
		fmt.Fprint(w, `{"versions": [{"language": "he", "text": "פירוש"}]}`)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	text, err := c.FetchCommentary("Mishnah Berakhot 1:1", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"פירוש"}, text.Hebrew)
}

func TestFetchCommentaryMissingIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	text, err := c.FetchCommentary("Mishnah Berakhot 1:1", "Tosafot Yom Tov")
	require.NoError(t, err)
	assert.Empty(t, text.Hebrew)
	assert.Equal(t, "Tosafot Yom Tov on Mishnah Berakhot 1:1", text.HeRef)
}

func TestPrefetch(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path == "/Broken.1" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"versions": [{"language": "he", "text": "טקסט"}]}`)
	}))
	defer server.Close()

	c := NewWithBaseURL(server.URL)
	c.Prefetch([]string{"Mishnah Berakhot 1", "Broken 1", "Mishnah Berakhot 2"})
	assert.Equal(t, 3, requests)
	assert.Len(t, c.cache, 2)

	// already-cached refs are not refetched
	c.Prefetch([]string{"Mishnah Berakhot 1"})
	assert.Equal(t, 3, requests)
}
