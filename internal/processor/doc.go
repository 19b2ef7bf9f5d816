// Package processor contains the core orchestration logic for the ipa2ru
// tool. It wires the IPA decoding and Cyrillic rendering pipeline to the
// command-line surface: single conversions, batch files, word transcription
// fetching, history recording and the GUI launcher.
package processor
