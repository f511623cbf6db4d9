package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// MockTranslator mocks a translation service
type MockTranslator struct {
	Translations map[string]string
	Errors       map[string]error
	Calls        []string
}

// Name returns the mock service name
func (m *MockTranslator) Name() string {
	return "mock"
}

// Translate mocks translating text
func (m *MockTranslator) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	call := fmt.Sprintf("Translate: %s (%s->%s)", text, fromLang, toLang)
	m.Calls = append(m.Calls, call)

	if err, ok := m.Errors[text]; ok {
		return "", err
	}

	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", text), nil
}

// MockGlosser mocks a dictionary gloss lookup
type MockGlosser struct {
	Glosses map[string]string
	Errors  map[string]error
	Calls   []string
}

// Gloss mocks looking up a word
func (m *MockGlosser) Gloss(ctx context.Context, word string) (string, error) {
	m.Calls = append(m.Calls, word)

	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	return m.Glosses[word], nil
}

// MockTTSProvider mocks an audio provider and writes fake MP3 data
type MockTTSProvider struct {
	Err          error
	Unavailable  error
	mu           sync.Mutex
	GeneratedFor []string
}

// GenerateAudio mocks speech synthesis
func (m *MockTTSProvider) GenerateAudio(ctx context.Context, text string, outputFile string) error {
	m.mu.Lock()
	m.GeneratedFor = append(m.GeneratedFor, text)
	m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	return os.WriteFile(outputFile, GenerateAudioData(), 0644)
}

// Name returns the mock provider name
func (m *MockTTSProvider) Name() string {
	return "mock"
}

// IsAvailable reports the configured availability error
func (m *MockTTSProvider) IsAvailable() error {
	return m.Unavailable
}

// Calls returns how many times GenerateAudio was called
func (m *MockTTSProvider) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GeneratedFor)
}

// GenerateAudioData generates mock audio data
func GenerateAudioData() []byte {
	// Simple mock MP3 header
	return []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}
}
