package agents

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shruti514/semantic-multi-agent-search/internal/logger"
	"github.com/shruti514/semantic-multi-agent-search/internal/utils"
	"github.com/shruti514/semantic-multi-agent-search/models"
)

// Metadata keys understood by the agents.
const (
	MetaQuery        = "query"
	MetaResearchType = "research_type"
	MetaAnalysisType = "analysis_type"
	MetaFormatType   = "format_type"
)

// baseAgent keeps the identity and the received-message log shared by all
// agents.
type baseAgent struct {
	id   string
	role models.AgentRole

	mu    sync.Mutex
	state models.AgentState

	ids *utils.UUIDGenerator
	now func() time.Time
}

func (a *baseAgent) init(id string, role models.AgentRole) {
	a.id = id
	a.role = role
	a.state = models.AgentState{
		Context: make(map[string]string),
		Status:  statusIdle,
	}
	a.ids = utils.NewUUIDGenerator()
	a.now = time.Now
}

func (a *baseAgent) ID() string {
	return a.id
}

func (a *baseAgent) Role() models.AgentRole {
	return a.role
}

func (a *baseAgent) State() models.AgentState {
	a.mu.Lock()
	defer a.mu.Unlock()

	return models.AgentState{
		Messages: slices.Clone(a.state.Messages),
		Context:  maps.Clone(a.state.Context),
		Status:   a.state.Status,
	}
}

// handle records message and runs produce with the agent marked as
// processing.
func (a *baseAgent) handle(ctx context.Context, message models.AgentMessage,
	produce func(content string, metadata map[string]string) (string, map[string]string),
) (models.AgentMessage, error) {
	if err := ctx.Err(); err != nil {
		return models.AgentMessage{}, err
	}
	if strings.TrimSpace(message.Content) == "" {
		return models.AgentMessage{}, ErrEmptyContent
	}

	a.mu.Lock()
	a.state.Messages = append(a.state.Messages, message)
	a.state.Status = statusProcessing
	a.mu.Unlock()

	content, metadata := produce(message.Content, message.Metadata)

	a.mu.Lock()
	a.state.Status = statusIdle
	a.mu.Unlock()

	return models.AgentMessage{
		ID:        a.ids.Generate(),
		Role:      a.role,
		Content:   content,
		Metadata:  metadata,
		Timestamp: a.now(),
	}, nil
}

func metaOrDefault(metadata map[string]string, key, fallback string) string {
	if v := metadata[key]; v != "" {
		return v
	}
	return fallback
}

// ResearchAgent gathers information about a query.
type ResearchAgent struct {
	baseAgent
}

func NewResearchAgent(id string) *ResearchAgent {
	a := &ResearchAgent{}
	a.init(id, models.RoleResearcher)
	return a
}

// Process implements [Agent]. The message content is the query.
func (a *ResearchAgent) Process(ctx context.Context, message models.AgentMessage) (models.AgentMessage, error) {
	return a.handle(ctx, message, func(query string, metadata map[string]string) (string, map[string]string) {
		return fmt.Sprintf("Research results for: %s", query), map[string]string{
			MetaQuery:        query,
			MetaResearchType: metaOrDefault(metadata, MetaResearchType, "general"),
		}
	})
}

// AnalysisAgent derives insights from research results.
type AnalysisAgent struct {
	baseAgent
}

func NewAnalysisAgent(id string) *AnalysisAgent {
	a := &AnalysisAgent{}
	a.init(id, models.RoleAnalyzer)
	return a
}

// Process implements [Agent]. The message content is the material to analyse.
func (a *AnalysisAgent) Process(ctx context.Context, message models.AgentMessage) (models.AgentMessage, error) {
	return a.handle(ctx, message, func(content string, metadata map[string]string) (string, map[string]string) {
		return fmt.Sprintf("Analysis of: %s", content), map[string]string{
			MetaAnalysisType: metaOrDefault(metadata, MetaAnalysisType, "general"),
		}
	})
}

// FormattingAgent presents an analysis as the final answer.
type FormattingAgent struct {
	baseAgent
}

func NewFormattingAgent(id string) *FormattingAgent {
	a := &FormattingAgent{}
	a.init(id, models.RoleFormatter)
	return a
}

// Process implements [Agent]. With format type "markdown", the default, the
// answer is a markdown document.
func (a *FormattingAgent) Process(ctx context.Context, message models.AgentMessage) (models.AgentMessage, error) {
	return a.handle(ctx, message, func(content string, metadata map[string]string) (string, map[string]string) {
		formatType := metaOrDefault(metadata, MetaFormatType, "markdown")

		var formatted string
		if formatType == "markdown" {
			formatted = fmt.Sprintf("# Search results\n\n%s\n", content)
		} else {
			formatted = fmt.Sprintf("Formatted content (%s):\n\n%s", formatType, content)
		}

		return formatted, map[string]string{MetaFormatType: formatType}
	})
}

// Identifiers of the search pipeline agents.
const (
	ResearcherID = "researcher"
	AnalyzerID   = "analyzer"
	FormatterID  = "formatter"
	UserID       = "user"
)

// NewSearchProtocol returns a protocol with the research, analysis and
// formatting agents registered under their standard identifiers.
func NewSearchProtocol(logger *logger.Logger) *Protocol {
	p := NewProtocol(logger)
	p.Register(NewResearchAgent(ResearcherID))
	p.Register(NewAnalysisAgent(AnalyzerID))
	p.Register(NewFormattingAgent(FormatterID))

	return p
}
