package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lincolncommercialsolutions/secret-scanner/internal/rules"
)

func BenchmarkScanContent(b *testing.B) {
	sc := New(rules.Compile(rules.Defaults(), nil))

	for _, lines := range []int{64, 512, 4096} {
		content := strings.Repeat("var someValue = computeThing(otherValue)\n", lines)
		b.Run(fmt.Sprintf("lines-%d", lines), func(b *testing.B) {
			b.SetBytes(int64(len(content)))
			for i := 0; i < b.N; i++ {
				sc.ScanContent(content, "bench.go", "")
			}
		})
	}
}

func BenchmarkScanContent_KeywordGate(b *testing.B) {
	content := strings.Repeat("plain line without trigger words\n", 1024)

	gated := New(rules.Compile([]rules.Rule{
		{ID: "gated", Pattern: `[A-Za-z0-9]{32}`, Keywords: []string{"credential"}},
	}, nil))
	ungated := New(rules.Compile([]rules.Rule{
		{ID: "ungated", Pattern: `[A-Za-z0-9]{32}`},
	}, nil))

	b.Run("gated", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			gated.ScanContent(content, "bench.txt", "")
		}
	})
	b.Run("ungated", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			ungated.ScanContent(content, "bench.txt", "")
		}
	})
}
