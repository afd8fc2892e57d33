// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "encoding/json"

const redacted = "[REDACTED]"

// Secret is a confidential configuration string such as the token signing
// key. Its String and MarshalJSON methods never reveal the value, so a config
// dumped to the log or to an error message stays safe. Use [Secret.Bytes] to
// obtain the raw key material.
type Secret string

// String implements [fmt.Stringer].
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// MarshalJSON implements [json.Marshaler].
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Bytes returns the raw secret.
func (s Secret) Bytes() []byte {
	return []byte(s)
}
