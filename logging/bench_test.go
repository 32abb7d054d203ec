package logging

import (
	"io"
	"strconv"
	"testing"

	smerrors "github.com/Station-Manager/errors"
	"github.com/rs/zerolog"
)

// newBenchService bypasses the entry points to measure the event path alone.
func newBenchService(level zerolog.Level) *Service {
	s := &Service{}
	logger := zerolog.New(io.Discard).Level(level)
	s.logger.Store(&logger)
	s.isInitialized.Store(true)
	return s
}

func makeDetailedChain(depth int) error {
	err := smerrors.New(smerrors.Op("op_0")).Msg("root cause message")
	for i := 1; i < depth; i++ {
		err = smerrors.New(smerrors.Op("op_" + strconv.Itoa(i))).Err(err).Msg("wrapped message")
	}
	return err
}

func BenchmarkInfoWith_NoErr(b *testing.B) {
	s := newBenchService(zerolog.InfoLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.InfoWith().Str("k", "v").Int("i", i).Msg("hello")
	}
}

func BenchmarkDebugWith_Disabled(b *testing.B) {
	s := newBenchService(zerolog.InfoLevel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.DebugWith().Str("k", "v").Msg("dropped")
	}
}

func BenchmarkErrorWith_DetailedChain(b *testing.B) {
	s := newBenchService(zerolog.InfoLevel)
	err := makeDetailedChain(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.ErrorWith().Err(err).Msg("failed")
	}
}

func BenchmarkChildLogger(b *testing.B) {
	s := newBenchService(zerolog.InfoLevel)
	child := s.With().Str("call_id", "bench").Logger()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		child.InfoWith().Msg("child")
	}
}
