package fake

import (
	"net"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	assert.Equal(t, CategoryCity, ParseCategory("city"))
	assert.Equal(t, CategoryCity, ParseCategory(" City "))
	assert.Equal(t, CategoryIP, ParseCategory("IP"))
	// unknown tokens fall back to alphanumeric strings
	assert.Equal(t, CategoryString, ParseCategory("vehicle"))
	assert.Equal(t, CategoryString, ParseCategory(""))
}

func TestValueShapes(t *testing.T) {
	p := NewSeeded(1)

	tests := []struct {
		category Category
		check    func(t *testing.T, v string)
	}{
		{CategoryName, func(t *testing.T, v string) {
			assert.Regexp(t, regexp.MustCompile(`^\S+ \S+$`), v)
		}},
		{CategoryCity, func(t *testing.T, v string) {
			assert.NotEmpty(t, v)
		}},
		{CategoryEmail, func(t *testing.T, v string) {
			assert.Contains(t, v, "@")
		}},
		{CategoryURL, func(t *testing.T, v string) {
			assert.Regexp(t, `^https://www\.[0-9A-Za-z]+\.com$`, v)
		}},
		{CategoryIP, func(t *testing.T, v string) {
			require.NotNil(t, net.ParseIP(v), "not a valid IP: %s", v)
		}},
		{CategoryInteger, func(t *testing.T, v string) {
			n, err := strconv.Atoi(v)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, n, 100)
			assert.LessOrEqual(t, n, 10000)
		}},
		{CategoryDecimal, func(t *testing.T, v string) {
			_, err := strconv.ParseFloat(v, 64)
			assert.NoError(t, err)
		}},
		{CategoryDate, func(t *testing.T, v string) {
			ts, err := time.Parse("2006-01-02 15:04:05", v)
			require.NoError(t, err)
			assert.True(t, ts.Before(time.Now()))
		}},
		{CategoryTimestamp, func(t *testing.T, v string) {
			_, err := strconv.ParseInt(v, 10, 64)
			assert.NoError(t, err)
		}},
		{CategoryPhone, func(t *testing.T, v string) {
			assert.Regexp(t, `^1[3-8]\d{8}$`, v)
		}},
		{CategoryString, func(t *testing.T, v string) {
			assert.Regexp(t, `^[0-9A-Za-z]{5,10}$`, v)
		}},
		{CategoryUniversity, func(t *testing.T, v string) {
			assert.NotEmpty(t, v)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				tt.check(t, p.Value(tt.category))
			}
		})
	}
}

func TestSeededDeterminism(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Value(CategoryName), b.Value(CategoryName))
	}
}
