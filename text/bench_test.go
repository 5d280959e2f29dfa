package text

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"
)

// generateText creates a string of roughly the given byte size mixing
// ASCII words with multibyte runes.
func generateText(size int) string {
	var sb strings.Builder
	sb.Grow(size)

	words := []string{"the", "quick", "brown", "fox", "héllo", "wörld", "日本語", "text", "🎉"}
	for sb.Len() < size {
		sb.WriteString(words[rand.Intn(len(words))])
		sb.WriteByte(' ')
	}
	return sb.String()
}

func benchText(b *testing.B, size int) Text {
	b.Helper()
	txt, err := FromString(generateText(size))
	if err != nil {
		b.Fatalf("invalid generated text: %v", err)
	}
	return txt
}

func BenchmarkRuneCount(b *testing.B) {
	txt := benchText(b, 64*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.RuneCount()
	}
}

func BenchmarkCompareRuneCountSmallBudget(b *testing.B) {
	txt := benchText(b, 64*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.CompareRuneCount(10)
	}
}

func BenchmarkSplitAt(b *testing.B) {
	txt := benchText(b, 64*1024)
	n := txt.RuneCount() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = txt.SplitAt(n)
	}
}

func BenchmarkReverse(b *testing.B) {
	txt := benchText(b, 64*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.Reverse()
	}
}

func BenchmarkFilter(b *testing.B) {
	txt := benchText(b, 64*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.Filter(unicode.IsLetter)
	}
}

func BenchmarkFilterIdentity(b *testing.B) {
	txt := benchText(b, 64*1024)
	always := func(rune) bool { return true }
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.Filter(always)
	}
}

func BenchmarkDropEnd(b *testing.B) {
	txt := benchText(b, 64*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = txt.DropEnd(100)
	}
}
