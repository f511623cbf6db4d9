package pronunciation

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerrypanguo/Deutsch-Learning/internal/audio"
	"github.com/jerrypanguo/Deutsch-Learning/internal/phonetic"
	"github.com/jerrypanguo/Deutsch-Learning/internal/testutil"
)

type fakePlayer struct {
	ok     bool
	played []string
}

func (p *fakePlayer) Play(ctx context.Context, file string) bool {
	p.played = append(p.played, file)
	return p.ok
}

type fakeIPA struct {
	out string
	err error
}

func (f fakeIPA) Fetch(ctx context.Context, text string) (string, error) {
	return f.out, f.err
}

func newGuide(t *testing.T, provider *testutil.MockTTSProvider, player Player, opts ...Option) *Guide {
	t.Helper()
	cache, err := audio.NewCache(t.TempDir(), provider, zerolog.Nop())
	require.NoError(t, err)
	return NewGuide(cache, player, zerolog.Nop(), opts...)
}

func TestGetPronunciationHaus(t *testing.T) {
	provider := &testutil.MockTTSProvider{}
	g := newGuide(t, provider, nil)

	result := g.GetPronunciation(context.Background(), "Haus")

	assert.Equal(t, []string{phonetic.DefaultTip}, result.Tips)
	require.True(t, result.HasAudio())
	testutil.AssertFileExists(t, result.AudioFile)
	assert.Empty(t, result.IPA)
}

func TestGetPronunciationIsIdempotent(t *testing.T) {
	provider := &testutil.MockTTSProvider{}
	g := newGuide(t, provider, nil)

	first := g.GetPronunciation(context.Background(), "Buch")
	second := g.GetPronunciation(context.Background(), "Buch")

	assert.Equal(t, first.AudioFile, second.AudioFile)
	assert.Equal(t, 1, provider.Calls())
	assert.Contains(t, first.Tips[0], "'ch'")
}

func TestGetPronunciationSynthesisFailure(t *testing.T) {
	provider := &testutil.MockTTSProvider{Err: errors.New("quota exceeded")}
	g := newGuide(t, provider, nil)

	result := g.GetPronunciation(context.Background(), "Haus")

	assert.False(t, result.HasAudio())
	assert.Equal(t, []string{phonetic.DefaultTip}, result.Tips)
}

func TestGetPronunciationWithIPA(t *testing.T) {
	g := newGuide(t, &testutil.MockTTSProvider{}, nil, WithIPA(fakeIPA{out: "Haus: [haʊ̯s]"}))
	assert.Equal(t, "Haus: [haʊ̯s]", g.GetPronunciation(context.Background(), "Haus").IPA)

	g = newGuide(t, &testutil.MockTTSProvider{}, nil, WithIPA(fakeIPA{err: errors.New("no key")}))
	result := g.GetPronunciation(context.Background(), "Haus")
	assert.Empty(t, result.IPA)
	assert.True(t, result.HasAudio())
}

func TestPlay(t *testing.T) {
	player := &fakePlayer{ok: true}
	g := newGuide(t, &testutil.MockTTSProvider{}, player)
	result := g.GetPronunciation(context.Background(), "Haus")

	assert.True(t, g.PlaybackEnabled())
	assert.True(t, g.Play(context.Background(), result.AudioFile))
	assert.Equal(t, []string{result.AudioFile}, player.played)

	assert.False(t, g.Play(context.Background(), ""))
	assert.Len(t, player.played, 1)
}

func TestPlayDisabled(t *testing.T) {
	g := newGuide(t, &testutil.MockTTSProvider{}, nil)
	assert.False(t, g.PlaybackEnabled())
	assert.False(t, g.Play(context.Background(), "x.mp3"))
}
