// Package api defines the tripledger.v1 wire messages and the Connect
// handlers and clients for TripService and AuthService.
//
// Messages are plain Go structs carried by a JSON codec, so any Connect or
// curl client can talk to the server with Content-Type: application/json.
package api

import (
	"encoding/json"
	"fmt"
)

// Codec is the Connect codec for every message in this package. It replaces
// Connect's protobuf-JSON codec under the same "json" name.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes as the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
