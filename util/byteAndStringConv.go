package util

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
)

func ToHex(b []byte) string {
	h := ByteToHex(b)
	if len(h) == 0 {
		h = "0"
	}
	return "0x" + h
}

func FromHex(s string) []byte {
	if len(s) > 1 {
		if s[0:2] == "0x" || s[0:2] == "0X" {
			s = s[2:]
		}
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	return HexToByte(s)
}

func ByteToHex(data []byte) string {
	return hex.EncodeToString(data)
}

func HexToByte(h string) []byte {
	b, err := hex.DecodeString(strings.ToLower(h))
	if err != nil {
		return nil
	}
	return b
}

func DecodeBase64(in string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(in)
}

func EncodeBase64(in []byte) string {
	return base64.StdEncoding.EncodeToString(in)
}
