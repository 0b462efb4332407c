package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Deterministic(t *testing.T) {
	page := Page{Hostname: "bet365.com", Path: "/live"}

	first := Classify(page)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(page))
	}
}

func TestClassify_KeywordMatchIsCaseInsensitiveSubstring(t *testing.T) {
	result := Classify(Page{Hostname: "MyBET123.com", Path: "/"})
	assert.True(t, result.IsMatch, "should match on 'bet' regardless of case")
}

func TestClassify_KeywordInPathOnly(t *testing.T) {
	result := Classify(Page{Hostname: "example.com", Path: "/casino/lobby"})
	assert.True(t, result.IsMatch)
}

func TestClassify_SubstringFalsePositiveIsKept(t *testing.T) {
	// No word-boundary logic: "tibetan" contains "bet".
	result := Classify(Page{Hostname: "tibetan.com", Path: "/"})
	assert.True(t, result.IsMatch)
}

func TestClassify_NoMatch(t *testing.T) {
	result := Classify(Page{Hostname: "example.com", Path: "/about"})
	assert.False(t, result.IsMatch)
	assert.Nil(t, result.Threat)
}

func TestDetectThreat_IPHostname(t *testing.T) {
	threat := DetectThreat(Page{Hostname: "192.168.1.1", Path: "/"})
	require.NotNil(t, threat)
	assert.Equal(t, ReasonIPHostname, threat.Reason)
}

func TestClassify_IPHostnameWithoutKeyword(t *testing.T) {
	result := Classify(Page{Hostname: "192.168.1.1", Path: "/"})
	assert.False(t, result.IsMatch)
	require.NotNil(t, result.Threat)
	assert.Equal(t, ReasonIPHostname, result.Threat.Reason)
}

func TestDetectThreat_IPHostnameWinsOverKeywords(t *testing.T) {
	// An IP literal hostname never contains letters, but the path can still
	// carry a keyword; the structural reason must stay ip-hostname.
	result := Classify(Page{Hostname: "10.0.0.1", Path: "/casino"})
	assert.True(t, result.IsMatch)
	require.NotNil(t, result.Threat)
	assert.Equal(t, ReasonIPHostname, result.Threat.Reason)
}

func TestDetectThreat_ManyDashes(t *testing.T) {
	threat := DetectThreat(Page{Hostname: "win-big-free-spins-now.com", Path: "/"})
	require.NotNil(t, threat)
	assert.Equal(t, ReasonManyDashes, threat.Reason)
}

func TestDetectThreat_ThreeDashesIsClean(t *testing.T) {
	threat := DetectThreat(Page{Hostname: "a-b-c-d.com", Path: "/"})
	assert.Nil(t, threat)
}

func TestDetectThreat_FormExternalAction(t *testing.T) {
	html := `<html><body>
		<form action="/local"><input name="q"></form>
		<form action="https://evil.example.net/collect"><input name="cc"></form>
	</body></html>`

	threat := DetectThreat(Page{
		Hostname: "goodbet.com",
		Path:     "/",
		URL:      "https://goodbet.com/",
		HTML:     strings.NewReader(html),
	})
	require.NotNil(t, threat)
	assert.Equal(t, ReasonFormExternalAction, threat.Reason)
	assert.Equal(t, "https://evil.example.net/collect", threat.Action)
}

func TestDetectThreat_RelativeFormActionIsClean(t *testing.T) {
	html := `<form action="/login"><input name="u"></form>`

	threat := DetectThreat(Page{
		Hostname: "goodbet.com",
		Path:     "/",
		URL:      "https://goodbet.com/",
		HTML:     strings.NewReader(html),
	})
	assert.Nil(t, threat)
}

func TestDetectThreat_MalformedActionSkipped(t *testing.T) {
	html := `<form action="://not a url"><input></form>
		<form action="https://other.example.com/x"><input></form>`

	threat := DetectThreat(Page{
		Hostname: "goodbet.com",
		Path:     "/",
		URL:      "https://goodbet.com/",
		HTML:     strings.NewReader(html),
	})
	require.NotNil(t, threat)
	assert.Equal(t, ReasonFormExternalAction, threat.Reason)
}

func TestDetectThreat_BadBaseURLIsErrorInspection(t *testing.T) {
	threat := DetectThreat(Page{
		Hostname: "goodbet.com",
		Path:     "/",
		URL:      "http://bad url with spaces",
		HTML:     strings.NewReader("<form action='/x'></form>"),
	})
	require.NotNil(t, threat)
	assert.Equal(t, ReasonErrorInspection, threat.Reason)
	assert.NotEmpty(t, threat.Error)
}

func TestDetectThreat_NoHTMLSkipsFormHeuristic(t *testing.T) {
	threat := DetectThreat(Page{Hostname: "goodbet.com", Path: "/"})
	assert.Nil(t, threat)
}

func TestContainsGamblingKeyword(t *testing.T) {
	assert.True(t, ContainsGamblingKeyword("https://poker-night.example.com"))
	assert.True(t, ContainsGamblingKeyword("BEST ODDS HERE"))
	assert.False(t, ContainsGamblingKeyword("https://news.example.com/article"))
}
