// Package models lists the OpenAI models usable by the assistant: speech
// models for pronunciation audio and chat models for translation and IPA
// breakdowns.
package models
