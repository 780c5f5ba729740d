package models

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_toBool(t *testing.T) {
	testCases := []struct {
		name    string
		val     any
		want    bool
		wantErr bool
	}{
		{name: "bool", val: true, want: true},
		{name: "int64", val: int64(0)},
		{name: "int", val: 1, want: true},
		{name: "postgres text", val: "t", want: true},
		{name: "mysql bytes", val: []byte("1"), want: true},
		{name: "unparsable", val: "maybe", wantErr: true},
		{name: "nil", val: nil, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toBool(tc.val)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_toInt64(t *testing.T) {
	testCases := []struct {
		name    string
		val     any
		want    int64
		wantErr bool
	}{
		{name: "int64", val: int64(12), want: 12},
		{name: "int32", val: int32(12), want: 12},
		{name: "float64", val: float64(12), want: 12},
		{name: "fractional float64", val: 1.9, wantErr: true},
		{name: "float64 out of range", val: 1e30, wantErr: true},
		{name: "NaN", val: math.NaN(), wantErr: true},
		{name: "string", val: "12", want: 12},
		{name: "bytes", val: []byte("12"), want: 12},
		{name: "not a number", val: "twelve", wantErr: true},
		{name: "bool", val: true, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toInt64(tc.val)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func Test_toTimePtr(t *testing.T) {
	want := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		val     any
		wantNil bool
		wantErr bool
	}{
		{name: "nil", val: nil, wantNil: true},
		{name: "time", val: want},
		{name: "pointer", val: &want},
		{name: "nil pointer", val: (*time.Time)(nil), wantNil: true},
		{name: "rfc3339", val: "2024-03-01T09:30:00Z"},
		{name: "sqlite", val: "2024-03-01 09:30:00+00:00"},
		{name: "mysql", val: []byte("2024-03-01 09:30:00")},
		{name: "garbage", val: "yesterday", wantErr: true},
		{name: "number", val: int64(1709285400), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := toTimePtr(tc.val)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, got)
				return
			}
			if assert.NotNil(t, got) {
				assert.True(t, want.Equal(*got))
			}
		})
	}
}
