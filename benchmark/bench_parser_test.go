//nolint:testpackage // using package name 'benchmark' to keep helpers shared across files
package benchmark

import (
	"testing"

	"github.com/dzonerzy/go-bossy/bossy"
)

// Category: parser

func simpleDefinition() bossy.Definition {
	return bossy.Define().
		Number("port", "").Alias("p").Default(bossy.IntValue(8080)).Back().
		Boolean("verbose", "").Alias("v").Back().
		Build()
}

func mustParser(b *testing.B, def bossy.Definition) *bossy.Parser {
	b.Helper()
	p, err := bossy.NewParser(def, bossy.WithColors(false))
	if err != nil {
		b.Fatal(err)
	}
	return p
}

func BenchmarkParserSimple(b *testing.B) {
	parser := mustParser(b, simpleDefinition())
	args := []string{"--port", "9000", "--verbose"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil {
			b.Fatal(err)
		}
		if !result.Bool("verbose") {
			b.Fatalf("verbose not parsed")
		}
	}
}

func BenchmarkParserCluster(b *testing.B) {
	def := bossy.Define().
		Boolean("all", "").Alias("a").Back().
		Boolean("long", "").Alias("l").Back().
		Boolean("human", "").Alias("H").Back().
		Number("columns", "").Alias("C").Back().
		Build()
	parser := mustParser(b, def)
	args := []string{"-alHC80"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil {
			b.Fatal(err)
		}
		if n, _ := result.Int("columns"); n != 80 {
			b.Fatalf("columns = %d", n)
		}
	}
}

func BenchmarkParserDeepJSON(b *testing.B) {
	def := bossy.Define().
		JSON("db", "").Default(bossy.MustValue(map[string]any{"port": 5432})).Back().
		Option("db.host", "").Back().
		JSON("db.pool", "").ParsePrimitives(bossy.PrimitivesOn).Back().
		Build()
	parser := mustParser(b, def)
	args := []string{"--db", `{"user":"app","tls":true}`, "--db.host", "localhost", "--db.pool", `{"size":8}`}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := result.RollUp("db"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParserRange(b *testing.B) {
	def := bossy.Define().Range("ports", "").Alias("r").Multiple().Back().Build()
	parser := mustParser(b, def)
	args := []string{"-r", "1-16", "--ports", "100-120", "-r", "443"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := parser.Parse(args)
		if err != nil {
			b.Fatal(err)
		}
		if len(result.Ints("ports")) != 38 {
			b.Fatalf("ranges not collected")
		}
	}
}

func BenchmarkParserUnknownOption(b *testing.B) {
	parser := mustParser(b, simpleDefinition())
	args := []string{"--prot", "9000"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := parser.Parse(args); err == nil {
			b.Fatal("expected an error")
		}
	}
}

func BenchmarkParserParallel(b *testing.B) {
	parser := mustParser(b, simpleDefinition())
	args := []string{"-vp", "9000", "input.txt"}
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := parser.Parse(args); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkValidate(b *testing.B) {
	def := manyDefinition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := bossy.Validate(def); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUsage(b *testing.B) {
	parser := mustParser(b, manyDefinition())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = parser.Usage("bench [options]")
	}
}
