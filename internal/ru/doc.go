// Package ru converts decoded IPA sound descriptors into Russian Cyrillic
// text. Reduction maps each descriptor onto a small fixed phoneme inventory
// (expanding long sounds into repetition); rendering then picks the
// orthographic spelling of each phoneme from its immediate neighbors
// (palatalization spread, vowel iotation, hard/soft sign placement).
package ru
