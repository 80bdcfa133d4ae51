package models

import (
	"encoding/base64"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackResultResponse is the JSON envelope used when a client asks for the
// search result as msgpack via the X-Body-Encoding: msgpack header. Criteria
// stay readable; the result travels as Base64 msgpack bytes.
type MsgPackResultResponse struct {
	Criteria      Criteria `json:"criteria"`
	ResultEncoded string   `json:"result_encoded"`
}

// EncodeMsgPackResult encodes a search result to Base64 msgpack.
//
// Encoding pipeline: SearchResult -> msgpack bytes -> Base64 string
func EncodeMsgPackResult(res SearchResult) (string, error) {
	msgpackBytes, err := msgpack.Marshal(res)
	if err != nil {
		return "", serr.Wrap(err, "failed to msgpack encode search result")
	}
	return base64.StdEncoding.EncodeToString(msgpackBytes), nil
}

// DecodeMsgPackResult reverses EncodeMsgPackResult.
func DecodeMsgPackResult(encoded string) (SearchResult, error) {
	var res SearchResult
	if encoded == "" {
		return res, serr.New("empty msgpack result")
	}

	msgpackBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return res, serr.Wrap(err, "failed to decode base64 result")
	}
	if err := msgpack.Unmarshal(msgpackBytes, &res); err != nil {
		return res, serr.Wrap(err, "failed to unmarshal msgpack result")
	}
	return res, nil
}

// ToMsgPackResponse wraps a result for msgpack transport.
func (res SearchResult) ToMsgPackResponse(c Criteria) (*MsgPackResultResponse, error) {
	encoded, err := EncodeMsgPackResult(res)
	if err != nil {
		return nil, err
	}
	return &MsgPackResultResponse{Criteria: c, ResultEncoded: encoded}, nil
}
