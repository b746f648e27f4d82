package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMSISDN(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "local format with leading zero",
			input: "0712345678",
			want:  "254712345678",
		},
		{
			name:  "international format with plus",
			input: "+254712345678",
			want:  "254712345678",
		},
		{
			name:  "international format without plus",
			input: "254712345678",
			want:  "254712345678",
		},
		{
			name:  "bare local number",
			input: "712345678",
			want:  "254712345678",
		},
		{
			name:  "safaricom 1xx prefix",
			input: "0110123456",
			want:  "254110123456",
		},
		{
			name:  "with dashes and spaces",
			input: "+254 712-345-678",
			want:  "254712345678",
		},
		{
			name:    "too short",
			input:   "07123",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "07123456789",
			wantErr: true,
		},
		{
			name:    "non kenyan prefix",
			input:   "0812345678",
			wantErr: true,
		},
		{
			name:    "non numeric",
			input:   "07abcdefgh",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMSISDN(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeMSISDNIdempotent(t *testing.T) {
	first, err := NormalizeMSISDN("0712345678")
	require.NoError(t, err)

	second, err := NormalizeMSISDN(first)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
