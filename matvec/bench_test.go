package matvec_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/distmv/generate"
	"github.com/katalvlaran/distmv/matvec"
)

func BenchmarkRunLocal(b *testing.B) {
	in := problem(b, 512, generate.PatternDense)
	for _, p := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("P=%d", p), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := matvec.RunLocal(context.Background(), p, in, matvec.WithoutValidation()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMultiplyAccumulate(b *testing.B) {
	in := problem(b, 512, generate.PatternDense)
	out := make([]float64, in.N)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := matvec.MultiplyAccumulateInto(in.A, in.B, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	in := problem(b, 512, generate.PatternDense)
	ref, err := matvec.MultiplyAccumulate(in.A, in.B)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matvec.Validate(in.A, in.B, ref); err != nil {
			b.Fatal(err)
		}
	}
}
