//nolint:testpackage // using package name 'benchmark' to keep helpers shared across files
package benchmark

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/fatih/color"

	"github.com/dzonerzy/go-bossy/bossy"
	"github.com/dzonerzy/go-bossy/deffile"
	fuzzy "github.com/dzonerzy/go-bossy/internal/fuzzy"
	pool "github.com/dzonerzy/go-bossy/internal/pool"
	bossyio "github.com/dzonerzy/go-bossy/io"
)

// Category: fuzzy

var optionNames = []string{
	"help", "version", "verbose", "config", "output", "input",
	"force", "debug", "port", "host", "timeout", "retry",
}

func BenchmarkFuzzy_Matches(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		fuzzy.Matches("vrebose", optionNames, 2)
	}
}

func BenchmarkFuzzy_Suggest(b *testing.B) {
	b.Run("Hit", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.Suggest("hep", optionNames, 2, 3)
		}
	})
	b.Run("Miss", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			fuzzy.Suggest("zzzzzzzz", optionNames, 2, 3)
		}
	})
}

// Category: io

func BenchmarkPalette(b *testing.B) {
	s := "--verbose"
	b.Run("Enabled", func(b *testing.B) {
		p := bossyio.NewPalette(true)
		for i := 0; i < b.N; i++ {
			_ = p.Paint(color.FgGreen, s)
		}
	})
	b.Run("Disabled", func(b *testing.B) {
		p := bossyio.NewPalette(false)
		for i := 0; i < b.N; i++ {
			_ = p.Paint(color.FgGreen, s)
		}
	})
}

func BenchmarkLogger_Filtered(b *testing.B) {
	buf := &bytes.Buffer{}
	logger := bossyio.NewLogger(bossyio.New().WithOut(buf).WithErr(buf).NoColor())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("%q: value for %s", "9000", "port")
	}
}

// Category: pool

func BenchmarkBuffer_Pool(b *testing.B) {
	b.Run("Pool", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf := pool.GetBuffer()
				buf.WriteString(`{"port":8080,"verbose":true}`)
				pool.PutBuffer(buf)
			}
		})
	})
	b.Run("Direct", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				buf := &bytes.Buffer{}
				buf.WriteString(`{"port":8080,"verbose":true}`)
				_ = buf
			}
		})
	})
}

// Category: values

func BenchmarkParseJSON(b *testing.B) {
	data := []byte(`{"db":{"host":"localhost","port":5432,"tags":["a","b"]},"__proto__":{"x":1}}`)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bossy.ParseJSON(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMerge(b *testing.B) {
	base := bossy.MustValue(map[string]any{"a": map[string]any{"b": 1, "c": []any{1, 2}}})
	patch := bossy.MustValue(map[string]any{"a": map[string]any{"c": []any{3}, "d": true}})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = bossy.Merge(base, patch)
	}
}

func BenchmarkExpandRange(b *testing.B) {
	for _, size := range []int{10, 100, 1000} {
		v := bossy.StringValue(fmt.Sprintf("1-%d,5", size))
		b.Run(fmt.Sprintf("Size%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = bossy.ExpandRange(v)
			}
		})
	}
}

// Category: definition files

func BenchmarkDeffile(b *testing.B) {
	inputs := []struct {
		name   string
		format deffile.Format
		data   string
	}{
		{"YAML", deffile.FormatYAML, "port:\n  alias: p\n  type: number\n  default: 8080\nverbose:\n  type: boolean\n"},
		{"TOML", deffile.FormatTOML, "[port]\nalias = \"p\"\ntype = \"number\"\ndefault = 8080\n\n[verbose]\ntype = \"boolean\"\n"},
		{"JSONC", deffile.FormatJSON, "{\n  // port\n  \"port\": {\"alias\": \"p\", \"type\": \"number\", \"default\": 8080},\n  \"verbose\": {\"type\": \"boolean\"},\n}"},
	}
	for _, in := range inputs {
		data := []byte(in.data)
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := deffile.Parse(data, in.format); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
