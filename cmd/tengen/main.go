package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	rng "github.com/leesper/go_rng"

	"github.com/kansuji/tengen"
	"github.com/kansuji/tengen/game"
	"github.com/kansuji/tengen/game/goban"
	"github.com/kansuji/tengen/gtp"
)

type config struct {
	Opponent string `env:"TENGEN_OPPONENT" env-default:"Illuminati" env-description:"opponent personality"`
	Player   string `env:"TENGEN_PLAYER" env-default:"Black" env-description:"side to move"`
	Seed     int64  `env:"TENGEN_SEED" env-default:"0" env-description:"RNG seed, 0 means wall clock"`
	GTP      bool   `env:"TENGEN_GTP" env-default:"false" env-description:"speak GTP on stdin/stdout"`
}

// uniformRand adapts go_rng's uniform generator to the core's Rand
// capability.
type uniformRand struct {
	*rng.UniformGenerator
}

func (u uniformRand) Rand() float64 { return u.Float64() }

func main() {
	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("config: %v", err)
	}

	opponent, err := tengen.ParseOpponent(cfg.Opponent)
	if err != nil {
		log.Fatalf("%v", err)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	core, err := tengen.New(tengen.Config{
		Opponent: opponent,
		Rand:     uniformRand{rng.NewUniformGenerator(seed)},
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if cfg.GTP {
		runGTP(core)
		return
	}

	player := game.Black
	if cfg.Player == "White" {
		player = game.White
	}

	// one shot: board columns on stdin, one play on stdout
	var columns []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		columns = append(columns, line)
	}
	for _, c := range columns {
		if len(c) != len(columns) {
			log.Fatalf("board is not square: %d columns, column %q has %d rows", len(columns), c, len(c))
		}
	}

	s := goban.NewState(goban.FromSimple(columns), player)
	fmt.Printf("%s\n", core.GetMove(s, player))
}

func runGTP(core *tengen.Engine) {
	e := gtp.New(core, "tengen", "0.1.0", nil)
	ch, ret := e.Start()
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		ch <- sc.Text()
		resp, ok := <-ret
		if !ok {
			return
		}
		fmt.Print(resp)
		if strings.HasPrefix(resp, "= QUIT") {
			return
		}
	}
	close(ch)
}
