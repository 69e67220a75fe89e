// Package fake is the synthetic-data collaborator used by the random mock
// strategy. It maps a value category to independently drawn example values.
// No third-party faker exists in this stack, so the provider carries its own
// small sample pools.
package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Category names one kind of synthetic value.
type Category string

const (
	CategoryName       Category = "name"
	CategoryCity       Category = "city"
	CategoryEmail      Category = "email"
	CategoryURL        Category = "url"
	CategoryIP         Category = "ip"
	CategoryInteger    Category = "integer"
	CategoryDecimal    Category = "decimal"
	CategoryUniversity Category = "university"
	CategoryDate       Category = "date"
	CategoryTimestamp  Category = "timestamp"
	CategoryPhone      Category = "phone"
	CategoryString     Category = "string"
)

// ParseCategory resolves a mock-params token to a category. Matching is
// case-insensitive. Unknown tokens fall back to the alphanumeric string
// category rather than producing empty values.
func ParseCategory(token string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(token))) {
	case CategoryName, CategoryCity, CategoryEmail, CategoryURL, CategoryIP,
		CategoryInteger, CategoryDecimal, CategoryUniversity, CategoryDate,
		CategoryTimestamp, CategoryPhone, CategoryString:
		return Category(strings.ToLower(strings.TrimSpace(token)))
	default:
		return CategoryString
	}
}

// Provider produces one synthetic value per call for a category.
type Provider interface {
	Value(category Category) string
}

var (
	givenNames = []string{
		"James", "Mary", "Wei", "Olivia", "Noah", "Emma", "Liam", "Ava",
		"Lucas", "Mia", "Elena", "Hiro", "Anika", "Omar", "Sofia", "Ivan",
	}
	familyNames = []string{
		"Smith", "Chen", "Garcia", "Johnson", "Kim", "Patel", "Brown",
		"Nguyen", "Müller", "Silva", "Kowalski", "Tanaka", "Okafor", "Rossi",
	}
	cities = []string{
		"Guangzhou", "Shanghai", "Berlin", "Lagos", "Austin", "Osaka",
		"Warsaw", "Lyon", "Toronto", "Mumbai", "Santiago", "Nairobi",
	}
	domains = []string{
		"example.com", "mail.test", "inbox.dev", "post.example.org",
	}
	universities = []string{
		"Sun Yat-sen University", "MIT", "ETH Zurich", "University of Tokyo",
		"Oxford", "Stanford", "Tsinghua University", "TU Munich",
	}
	alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Rand is the default Provider, backed by a math/rand source. A mutex guards
// the source so one provider can serve concurrent generation runs.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewRand returns a provider seeded from the current time.
func NewRand() *Rand {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a deterministic provider for tests.
func NewSeeded(seed int64) *Rand {
	return &Rand{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Value draws one synthetic value for the category.
func (p *Rand) Value(category Category) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch category {
	case CategoryName:
		return p.pick(givenNames) + " " + p.pick(familyNames)
	case CategoryCity:
		return p.pick(cities)
	case CategoryEmail:
		return strings.ToLower(p.pick(givenNames)) + fmt.Sprintf("%d", p.rng.Intn(1000)) + "@" + p.pick(domains)
	case CategoryURL:
		return "https://www." + p.alnum(5, 10) + ".com"
	case CategoryIP:
		return fmt.Sprintf("%d.%d.%d.%d",
			1+p.rng.Intn(223), p.rng.Intn(256), p.rng.Intn(256), 1+p.rng.Intn(254))
	case CategoryInteger:
		// same range the original engine drew from
		return fmt.Sprintf("%d", 100+p.rng.Intn(9901))
	case CategoryDecimal:
		return fmt.Sprintf("%.2f", p.rng.Float64()*10000)
	case CategoryUniversity:
		return p.pick(universities)
	case CategoryDate:
		return p.pastTime().Format("2006-01-02 15:04:05")
	case CategoryTimestamp:
		return fmt.Sprintf("%d", p.pastTime().Unix())
	case CategoryPhone:
		return fmt.Sprintf("1%d%08d", 3+p.rng.Intn(6), p.rng.Intn(100000000))
	default:
		return p.alnum(5, 10)
	}
}

func (p *Rand) pick(pool []string) string {
	return pool[p.rng.Intn(len(pool))]
}

func (p *Rand) alnum(minLen, maxLen int) string {
	n := minLen + p.rng.Intn(maxLen-minLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[p.rng.Intn(len(alphanumeric))]
	}
	return string(b)
}

// pastTime returns a random instant within the last year.
func (p *Rand) pastTime() time.Time {
	back := time.Duration(p.rng.Int63n(int64(365 * 24 * time.Hour)))
	return p.now().Add(-back)
}
