// Package phonetic fetches IPA transcriptions for ordinary words so they can
// be fed into the transliteration pipeline. Providers are pluggable (OpenAI
// or Gemini) and can be wrapped in a circuit breaker so a failing API stops
// being hammered during batch runs.
package phonetic
