// Package game provides the main game loop and state management.
package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/AkesSpur/the-snake/internal/entity"
	"github.com/AkesSpur/the-snake/internal/grid"
	"github.com/AkesSpur/the-snake/internal/telemetry"
)

// RenderSink receives the board occupants once per tick. The core never
// draws pixels or cells itself; it only hands the current state over.
type RenderSink interface {
	Render(objects []entity.Drawable)
}

// Game owns the snake and the food for one session and drives them at a
// fixed tick rate. All mutation happens on the goroutine running Run;
// input events cross the channel boundary but are applied only at the
// single drain point at the start of each tick.
type Game struct {
	board     grid.Board
	snake     *entity.Snake
	food      *entity.Food
	sink      RenderSink
	pacer     Pacer
	input     <-chan Event
	seed      int64
	sessionID string
	running   bool

	// Session counters, reported on the run span.
	ticks  int
	resets int
	eaten  int
}

// New creates a game instance wired to the given collaborators.
func New(cfg Config, sink RenderSink, pacer Pacer, input <-chan Event) *Game {
	cfg = cfg.withDefaults()
	seed := cfg.seed()
	rng := rand.New(rand.NewSource(seed))
	board := grid.Board{Width: cfg.Width, Height: cfg.Height}

	return &Game{
		board:     board,
		snake:     entity.NewSnake(board, rng),
		food:      entity.NewFood(board, rng),
		sink:      sink,
		pacer:     pacer,
		input:     input,
		seed:      seed,
		sessionID: uuid.NewString(),
		running:   true,
	}
}

// Run executes the main game loop until a quit event arrives or the
// context is canceled.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.session")
	defer span.End()

	span.SetAttributes(
		attribute.String("session.id", g.sessionID),
		attribute.Int("board.width", g.board.Width),
		attribute.Int("board.height", g.board.Height),
		attribute.Int64("session.seed", g.seed),
	)

	for g.running {
		select {
		case <-ctx.Done():
			g.running = false
			continue
		default:
		}

		g.tick()
		if g.running {
			g.pacer.Wait()
		}
	}

	span.SetAttributes(
		attribute.Int("session.ticks", g.ticks),
		attribute.Int("session.resets", g.resets),
		attribute.Int("session.food_eaten", g.eaten),
	)
	return nil
}

// tick runs one simulation step: drain input, commit the buffered
// direction, advance the snake, resolve food, render.
func (g *Game) tick() {
	g.drainInput()
	if !g.running {
		return
	}

	g.snake.CommitDirection()

	head, reset := g.snake.Advance()
	if reset {
		g.resets++
	} else if head == g.food.Position() {
		g.snake.Grow()
		g.food.Relocate()
		g.eaten++
	}

	g.sink.Render([]entity.Drawable{g.snake, g.food})
	g.ticks++
}

// drainInput applies every event buffered since the previous tick. For
// direction events the last one wins; the reversal filter runs later at
// commit time. A quit event stops the loop.
func (g *Game) drainInput() {
	for {
		select {
		case ev, ok := <-g.input:
			if !ok {
				g.running = false
				return
			}
			switch ev {
			case EventUp:
				g.snake.BufferDirection(grid.DirUp)
			case EventDown:
				g.snake.BufferDirection(grid.DirDown)
			case EventLeft:
				g.snake.BufferDirection(grid.DirLeft)
			case EventRight:
				g.snake.BufferDirection(grid.DirRight)
			case EventQuit:
				g.running = false
			}
		default:
			return
		}
	}
}
