package dictionary

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/jerrypanguo/Deutsch-Learning/internal/testutil"
)

const exampleResponse = `[
	{
		"word": "Haus",
		"phonetic": "haʊ̯s",
		"phonetics": [{"text": "haʊ̯s", "audio": ""}],
		"meanings": [
			{
				"partOfSpeech": "noun",
				"definitions": [
					{"definition": "house", "synonyms": [], "antonyms": []},
					{"definition": "building", "synonyms": [], "antonyms": []},
					{"definition": "home", "synonyms": [], "antonyms": []}
				]
			},
			{
				"partOfSpeech": "",
				"definitions": [{"definition": "ignored"}]
			},
			{
				"partOfSpeech": "verb",
				"definitions": [{"definition": "to dwell"}]
			},
			{
				"partOfSpeech": "interjection",
				"definitions": [{"definition": "never shown"}]
			}
		]
	}
]`

func TestLookup(t *testing.T) {
	validURL := "https://api.dictionaryapi.dev/api/v2/entries/de/haus"
	word := "Haus"

	t.Run("success", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, validURL, req.URL.String())
			return testutil.Response(200, exampleResponse), nil
		}), zerolog.Nop())

		entries, err := client.Lookup(context.TODO(), word)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "Haus", entries[0].Word)
		assert.Len(t, entries[0].Meanings, 4)
		assert.Equal(t, "house", entries[0].Meanings[0].Definitions[0].Definition)
	})
	t.Run("not found", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return testutil.Response(404, `{"title":"No Definitions Found"}`), nil
		}), zerolog.Nop())

		entries, err := client.Lookup(context.TODO(), word)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, entries)
	})
	t.Run("request error", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return nil, http.ErrServerClosed
		}), zerolog.Nop())

		_, err := client.Lookup(context.TODO(), word)
		assert.ErrorIs(t, err, http.ErrServerClosed)
	})
	t.Run("error status", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return testutil.Response(500, "oops"), nil
		}), zerolog.Nop())

		_, err := client.Lookup(context.TODO(), word)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
	t.Run("invalid response", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return testutil.Response(200, "Invalid JSON"), nil
		}), zerolog.Nop())

		_, err := client.Lookup(context.TODO(), word)
		assert.Error(t, err)
	})
}

func TestClientGloss(t *testing.T) {
	t.Run("formats first entry", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return testutil.Response(200, exampleResponse), nil
		}), zerolog.Nop())

		gloss, err := client.Gloss(context.TODO(), "Haus")
		assert.NoError(t, err)
		assert.Equal(t, "noun: house; building | verb: to dwell", gloss)
	})
	t.Run("unknown word is empty", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return testutil.Response(404, ""), nil
		}), zerolog.Nop())

		gloss, err := client.Gloss(context.TODO(), "xyzzy")
		assert.NoError(t, err)
		assert.Empty(t, gloss)
	})
	t.Run("errors are returned", func(t *testing.T) {
		client := NewClient(testutil.NewHTTPClient(func(req *http.Request) (*http.Response, error) {
			return testutil.Response(503, ""), nil
		}), zerolog.Nop())

		_, err := client.Gloss(context.TODO(), "Haus")
		assert.Error(t, err)
	})
}
