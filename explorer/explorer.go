package explorer

import (
	"context"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/zeu5/qtrain"
)

// Server exposes a trained value table and recorded traces for inspection
// over HTTP. It serves snapshots of the learned values and never mutates
// the trainer. Explore the choices of a trained policy with:
//
//	GET /states              state hashes with learned values
//	GET /values/:state       learned action values for a state hash
//	GET /traces              number and lengths of recorded traces
//	GET /traces/:index       one recorded trace, step by step
type Server struct {
	trainer *qtrain.Trainer
	traces  []*qtrain.Trace
	server  *http.Server
}

type traceStep struct {
	Step      int     `json:"step"`
	State     string  `json:"state"`
	Action    string  `json:"action"`
	NextState string  `json:"next_state"`
	Reward    float64 `json:"reward"`
}

// NewServer creates an inspection server for the trainer and the optional
// recorded traces.
func NewServer(addr string, trainer *qtrain.Trainer, traces ...*qtrain.Trace) *Server {
	s := &Server{
		trainer: trainer,
		traces:  traces,
	}
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/states", s.handleStates)
	r.GET("/values/:state", s.handleValues)
	r.GET("/traces", s.handleTraces)
	r.GET("/traces/:index", s.handleTrace)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}
	return s
}

// Start serves until Stop is called. Blocks.
func (s *Server) Start() error {
	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleStates(c *gin.Context) {
	snapshot := s.trainer.Export()
	states := make([]string, 0, len(snapshot))
	for state := range snapshot {
		states = append(states, state)
	}
	sort.Strings(states)
	c.JSON(http.StatusOK, gin.H{"states": states})
}

func (s *Server) handleValues(c *gin.Context) {
	state := c.Param("state")
	snapshot := s.trainer.Export()
	values, ok := snapshot[state]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no values learned for state"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": state, "values": values})
}

func (s *Server) handleTraces(c *gin.Context) {
	lengths := make([]int, len(s.traces))
	for i, t := range s.traces {
		lengths[i] = t.Len()
	}
	c.JSON(http.StatusOK, gin.H{"count": len(s.traces), "lengths": lengths})
}

func (s *Server) handleTrace(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(s.traces) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such trace"})
		return
	}
	trace := s.traces[index]
	steps := make([]traceStep, 0, trace.Len())
	for i := 0; i < trace.Len(); i++ {
		state, action, nextState, reward, _ := trace.Get(i)
		steps = append(steps, traceStep{
			Step:      i,
			State:     state,
			Action:    action,
			NextState: nextState,
			Reward:    reward,
		})
	}
	c.JSON(http.StatusOK, gin.H{"index": index, "steps": steps})
}
