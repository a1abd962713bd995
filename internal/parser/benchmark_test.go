package parser

import (
	"strings"
	"testing"
)

const (
	longGame = "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. c3 Nf6 5. d4 exd4 6. cxd4 Bb4+ 7. Nc3 Nxe4 " +
		"8. O-O Nxc3 9. bxc3 Bxc3 10. Qb3 Bxa1 11. Bxf7+ Kf8 12. Bg5 Ne7 13. Ne5 Bxd4 " +
		"14. Bg6 d5 15. Qf3+ Bf5 16. Bxf5 Bxe5 17. Be6+ Bf6 18. Bxf6 gxf6 19. Qxf6+ Ke8 " +
		"20. Qf7# 1-0"

	annotatedGame = "1. e4 {Best by test} e5 2. Nf3 Nc6 3. Bb5 {The Ruy Lopez} a6 4. Ba4 Nf6 " +
		"5. O-O Be7 6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8!? {A prophylactic retreat} " +
		"10. d4 Nbd7 11. Nbd2 Bb7 $1 12. Bc2 Re8 1-0"
)

func BenchmarkParser_ParseGame(b *testing.B) {
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(longGame), "bench")
		if _, err := p.ParseGame(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer_NextToken(b *testing.B) {
	for i := 0; i < b.N; i++ {
		l := NewLexer(annotatedGame)
		for l.NextToken().Type != EOLToken {
		}
	}
}

func BenchmarkParser_LargeInput(b *testing.B) {
	input := strings.Repeat(longGame+"\n"+annotatedGame+"\n", 200)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(input), "bench")
		if _, err := p.ParseAllGames(); err != nil {
			b.Fatal(err)
		}
	}
}
