package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	allFilmsBody = `{"data":{"allFilms":{"films":[
		{"id":"ZmlsbXM6MQ==","title":"A New Hope","releaseDate":"1977-05-25"}
	]}}}`
	filmBody = `{"data":{"film":{
		"title":"A New Hope","episodeID":4,"releaseDate":"1977-05-25","director":"George Lucas",
		"characterConnection":{"characters":[{"id":"cGVvcGxlOjE=","name":"Luke Skywalker"}]}
	}}}`
	personBody = `{"data":{"person":{
		"name":"Luke Skywalker","birthYear":"19BBY","eyeColor":"blue","gender":"male",
		"hairColor":"blond","skinColor":"fair","homeworld":{"name":"Tatooine"},
		"filmConnection":{"films":[{"id":"ZmlsbXM6MQ==","title":"A New Hope","releaseDate":"1977-05-25"}]}
	}}}`
)

// upstream answers each operation with a canned body and records what was asked for.
type upstream struct {
	mu    sync.Mutex
	ids   []string
	ops   []string
	fail  map[string]bool
	delay time.Duration
}

func (u *upstream) start(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OperationName string         `json:"operationName"`
			Variables     map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		u.mu.Lock()
		u.ops = append(u.ops, req.OperationName)
		if id, ok := req.Variables["id"].(string); ok {
			u.ids = append(u.ids, id)
		}
		fail := u.fail[req.OperationName]
		u.mu.Unlock()

		if u.delay > 0 {
			time.Sleep(u.delay)
		}
		if fail {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch req.OperationName {
		case "AllFilms":
			w.Write([]byte(allFilmsBody))
		case "FilmDetail":
			w.Write([]byte(filmBody))
		case "CharacterDetail":
			w.Write([]byte(personBody))
		default:
			http.Error(w, "unknown operation", http.StatusBadRequest)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (u *upstream) calls() (ops, ids []string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.ops...), append([]string(nil), u.ids...)
}

func (u *upstream) seenIDs() []string {
	_, ids := u.calls()
	return ids
}

func (u *upstream) seenOps() []string {
	ops, _ := u.calls()
	return ops
}

func newUpstream(t *testing.T) (*httptest.Server, *upstream) {
	t.Helper()
	u := &upstream{}
	return u.start(t), u
}

func run(t *testing.T, endpoint, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--endpoint", endpoint, "--cache-size", "0"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFilmsCommand(t *testing.T) {
	srv, _ := newUpstream(t)

	out, err := run(t, srv.URL, "", "films")

	require.NoError(t, err)
	assert.Contains(t, out, "Films\n=====\n")
	assert.Contains(t, out, "[1] A New Hope")
	assert.Contains(t, out, "1977-05-25")
}

func TestFilmCommand_AcceptsBareNumber(t *testing.T) {
	srv, up := newUpstream(t)

	out, err := run(t, srv.URL, "", "film", "1")

	require.NoError(t, err)
	assert.Equal(t, []string{"ZmlsbXM6MQ=="}, up.seenIDs())
	assert.Contains(t, out, "Director")
	assert.Contains(t, out, "George Lucas")
	assert.Contains(t, out, "[1] Luke Skywalker")
}

func TestCharacterCommand_JSON(t *testing.T) {
	srv, up := newUpstream(t)

	out, err := run(t, srv.URL, "", "--output", "json", "character", "cGVvcGxlOjE=")

	require.NoError(t, err)
	assert.Equal(t, []string{"cGVvcGxlOjE="}, up.seenIDs())

	var screen struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &screen))
	assert.Equal(t, "Luke Skywalker", screen.Title)
}

func TestFilmCommand_RejectsPersonID(t *testing.T) {
	srv, up := newUpstream(t)

	_, err := run(t, srv.URL, "", "film", "cGVvcGxlOjE=")

	assert.Error(t, err)
	assert.Empty(t, up.seenIDs())
}

func TestRootCommand_RejectsUnknownOutput(t *testing.T) {
	srv, _ := newUpstream(t)

	_, err := run(t, srv.URL, "", "--output", "yaml", "films")

	assert.ErrorContains(t, err, "unknown output format")
}

func TestBrowseCommand(t *testing.T) {
	srv, up := newUpstream(t)

	// film list -> first film -> first character -> back -> back -> back at root -> quit
	out, err := run(t, srv.URL, "1\n1\nb\nb\nb\n9\nx\nq\n", "browse")

	require.NoError(t, err)
	assert.Equal(t, []string{"ZmlsbXM6MQ==", "cGVvcGxlOjE=", "ZmlsbXM6MQ=="}, up.seenIDs())
	assert.Contains(t, out, "Home World  Tatooine")
	assert.Contains(t, out, "/characters/cGVvcGxlOjE=> ")
	assert.Contains(t, out, "already at the film list")
	assert.Contains(t, out, "row out of range")
	assert.Contains(t, out, "enter a row number, b, h, r or q")
}

func TestBrowseCommand_EndOfInput(t *testing.T) {
	srv, _ := newUpstream(t)

	out, err := run(t, srv.URL, "", "browse")

	require.NoError(t, err)
	assert.Contains(t, out, "/films> ")
}

func TestBrowseCommand_DetailFailure(t *testing.T) {
	u := &upstream{fail: map[string]bool{"FilmDetail": true}}
	srv := u.start(t)

	out, err := run(t, srv.URL, "1\nq\n", "browse")

	require.NoError(t, err)
	assert.Equal(t, []string{"AllFilms", "FilmDetail", "AllFilms"}, u.seenOps())
	assert.Contains(t, out, "error: upstream request failed")
	assert.Equal(t, 2, strings.Count(out, "/films> "))
	assert.NotContains(t, out, "/films/ZmlsbXM6MQ==> ")
}

func TestBrowseCommand_FailureAtRoot(t *testing.T) {
	u := &upstream{fail: map[string]bool{"AllFilms": true}}
	srv := u.start(t)

	_, err := run(t, srv.URL, "q\n", "browse")

	assert.ErrorContains(t, err, "upstream request failed")
}

func TestBrowseCommand_ReloadRefetches(t *testing.T) {
	u := &upstream{}
	srv := u.start(t)

	// back from the film uses the cached list, reload goes upstream again
	out, err := run(t, srv.URL, "1\nb\nr\nq\n", "browse", "--cache-size", "8")

	require.NoError(t, err)
	assert.Equal(t, []string{"AllFilms", "FilmDetail", "AllFilms"}, u.seenOps())
	assert.Equal(t, 3, strings.Count(out, "Films\n=====\n"))
}

func TestBrowseCommand_History(t *testing.T) {
	srv, _ := newUpstream(t)

	out, err := run(t, srv.URL, "1\n1\nh\nq\n", "browse")

	require.NoError(t, err)
	assert.Contains(t, out, "/films > /films/ZmlsbXM6MQ== > /characters/cGVvcGxlOjE=\n")
}

func TestRootCommand_SubSecondTimeout(t *testing.T) {
	u := &upstream{delay: 500 * time.Millisecond}
	srv := u.start(t)

	_, err := run(t, srv.URL, "", "--timeout", "100ms", "films")

	assert.ErrorContains(t, err, "upstream request failed")
}
