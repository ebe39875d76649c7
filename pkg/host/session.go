package host

import (
	"context"
	stderrors "errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framecode/pkg/errors"
	"github.com/matzehuels/framecode/pkg/observability"
	"github.com/matzehuels/framecode/pkg/pipeline"
)

// Payload selects what a session posts after a successful build.
type Payload string

const (
	// PayloadArtifacts posts the generated markup and stylesheet.
	PayloadArtifacts Payload = "artifacts"
	// PayloadSelection posts only the ids of the selected nodes. The
	// artifacts are still generated and logged at debug level.
	PayloadSelection Payload = "selection"
)

// Payloads lists the valid payload names.
var Payloads = []string{string(PayloadArtifacts), string(PayloadSelection)}

// Config configures a session.
type Config struct {
	Options pipeline.Options
	Payload Payload
	Logger  *log.Logger
}

// Session converts selection events one build at a time.
//
// Post is called with the session lock held, which guarantees that no
// newer event can be accepted between the staleness check and delivery.
// Posters must therefore not call back into the session.
type Session struct {
	runner  *pipeline.Runner
	poster  Poster
	opts    pipeline.Options
	payload Payload
	logger  *log.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSession validates cfg and creates a session. A nil runner uses a
// default runner.
func NewSession(runner *pipeline.Runner, poster Poster, cfg Config) (*Session, error) {
	if cfg.Payload == "" {
		cfg.Payload = PayloadArtifacts
	}
	if err := errors.ValidateOneOf(errors.ErrCodeInvalidInput, "payload", string(cfg.Payload), Payloads...); err != nil {
		return nil, err
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if cfg.Options.Logger == nil {
		cfg.Options.Logger = cfg.Logger
	}
	if err := cfg.Options.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, cfg.Logger)
	}
	if poster == nil {
		poster = PosterFunc(func(context.Context, Message) error { return nil })
	}
	return &Session{
		runner:  runner,
		poster:  poster,
		opts:    cfg.Options,
		payload: cfg.Payload,
		logger:  cfg.Logger,
	}, nil
}

// Handle starts converting ev in the background, cancelling any build
// still running for an earlier event. It returns immediately.
func (s *Session) Handle(ctx context.Context, ev Event) {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	bctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	observability.Host().OnSelection(ctx, len(ev.Selection))
	s.logger.Debug("selection changed", "nodes", len(ev.Selection), "parent", ev.ParentID)

	go func() {
		defer s.wg.Done()
		defer cancel()
		s.run(bctx, seq, ev)
	}()
}

// Wait blocks until every started build has finished.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels the running build and waits for it.
func (s *Session) Close() {
	s.mu.Lock()
	s.seq++
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Session) run(ctx context.Context, seq uint64, ev Event) {
	res, err := s.runner.Execute(ctx, ev.Selection, s.opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		buildID := ""
		if res != nil {
			buildID = res.BuildID
		}
		observability.Host().OnSuperseded(ctx, buildID)
		s.logger.Debug("dropping superseded build", "build", buildID)
		return
	}

	var msg Message
	switch {
	case err != nil && (errors.Is(err, errors.ErrCodeCanceled) || stderrors.Is(err, context.Canceled)):
		s.logger.Debug("build canceled", "err", err)
		return
	case err != nil:
		s.logger.Error("build failed", "err", err)
		msg = Message{Type: MessageError, ParentID: ev.ParentID, Selection: ev.IDs(), Error: errors.UserMessage(err)}
	case s.payload == PayloadSelection:
		s.logger.Debug("generated markup", "build", res.BuildID, "markup", res.Markup)
		s.logger.Debug("generated stylesheet", "build", res.BuildID, "stylesheet", res.Stylesheet)
		msg = Message{Type: MessageSelection, BuildID: res.BuildID, ParentID: ev.ParentID, Selection: ev.IDs()}
	default:
		msg = Message{
			Type:       MessageArtifacts,
			BuildID:    res.BuildID,
			ParentID:   ev.ParentID,
			Selection:  ev.IDs(),
			Markup:     res.Markup,
			Stylesheet: res.Stylesheet,
		}
	}

	// Delivery ignores cancellation of the build context.
	postCtx := context.WithoutCancel(ctx)
	if err := s.poster.Post(postCtx, msg); err != nil {
		s.logger.Warn("post failed", "type", msg.Type, "err", err)
		return
	}
	observability.Host().OnPost(postCtx, msg.Type, msg.Size())
}
