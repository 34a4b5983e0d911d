// Copyright 2026 The Sysprobe Authors
// SPDX-License-Identifier: Apache-2.0

package export

import (
	"fmt"
	"io"
	"os"

	"filippo.io/age"
)

// sealWriter layers age encryption over w, encrypting to every
// recipient key (age1... format). The returned writer must be closed
// to finalize the ciphertext; closing it does not close w.
func sealWriter(w io.Writer, recipientKeys []string) (io.WriteCloser, error) {
	if len(recipientKeys) == 0 {
		return nil, fmt.Errorf("sealing requires at least one age recipient")
	}

	recipients, err := parseRecipients(recipientKeys)
	if err != nil {
		return nil, err
	}

	writer, err := age.Encrypt(w, recipients...)
	if err != nil {
		return nil, fmt.Errorf("creating age encryptor: %w", err)
	}
	return writer, nil
}

// unsealReader layers age decryption over r using the identities from
// the given file. Any identity that opens the file suffices.
func unsealReader(r io.Reader, identitiesPath string) (io.Reader, error) {
	identities, err := LoadIdentities(identitiesPath)
	if err != nil {
		return nil, err
	}

	reader, err := age.Decrypt(r, identities...)
	if err != nil {
		return nil, fmt.Errorf("decrypting snapshot: %w", err)
	}
	return reader, nil
}

func parseRecipients(recipientKeys []string) ([]age.Recipient, error) {
	recipients := make([]age.Recipient, 0, len(recipientKeys))
	for _, key := range recipientKeys {
		recipient, err := age.ParseX25519Recipient(key)
		if err != nil {
			return nil, fmt.Errorf("parsing recipient key %q: %w", key, err)
		}
		recipients = append(recipients, recipient)
	}
	return recipients, nil
}

// ValidateRecipients checks that every key is a well-formed age
// X25519 public key. Callers validate command-line recipients with
// this before spending a sampling window on a snapshot that could
// not be written.
func ValidateRecipients(recipientKeys []string) error {
	_, err := parseRecipients(recipientKeys)
	return err
}

// LoadIdentities reads an age identities file: one AGE-SECRET-KEY-1
// line per identity, with blank lines and # comments ignored (the
// format written by age-keygen).
func LoadIdentities(path string) ([]age.Identity, error) {
	if path == "" {
		return nil, fmt.Errorf("reading a sealed snapshot requires an identities file")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening identities file: %w", err)
	}
	defer file.Close()

	identities, err := age.ParseIdentities(file)
	if err != nil {
		return nil, fmt.Errorf("parsing identities file %s: %w", path, err)
	}
	return identities, nil
}
