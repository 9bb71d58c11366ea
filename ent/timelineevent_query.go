// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/llminteraction"
	"github.com/tarsy-project/tarsy/ent/mcpinteraction"
	"github.com/tarsy-project/tarsy/ent/predicate"
	"github.com/tarsy-project/tarsy/ent/stageexecution"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

// TimelineEventQuery is the builder for querying TimelineEvent entities.
type TimelineEventQuery struct {
	config
	ctx                *QueryContext
	order              []timelineevent.OrderOption
	inters             []Interceptor
	predicates         []predicate.TimelineEvent
	withSession        *AlertSessionQuery
	withStageExecution *StageExecutionQuery
	withLlmInteraction *LLMInteractionQuery
	withMcpInteraction *MCPInteractionQuery
	modifiers          []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TimelineEventQuery builder.
func (_q *TimelineEventQuery) Where(ps ...predicate.TimelineEvent) *TimelineEventQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TimelineEventQuery) Limit(limit int) *TimelineEventQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TimelineEventQuery) Offset(offset int) *TimelineEventQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TimelineEventQuery) Unique(unique bool) *TimelineEventQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TimelineEventQuery) Order(o ...timelineevent.OrderOption) *TimelineEventQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySession chains the current query on the "session" edge.
func (_q *TimelineEventQuery) QuerySession() *AlertSessionQuery {
	query := (&AlertSessionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, selector),
			sqlgraph.To(alertsession.Table, alertsession.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.SessionTable, timelineevent.SessionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStageExecution chains the current query on the "stage_execution" edge.
func (_q *TimelineEventQuery) QueryStageExecution() *StageExecutionQuery {
	query := (&StageExecutionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, selector),
			sqlgraph.To(stageexecution.Table, stageexecution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.StageExecutionTable, timelineevent.StageExecutionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLlmInteraction chains the current query on the "llm_interaction" edge.
func (_q *TimelineEventQuery) QueryLlmInteraction() *LLMInteractionQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, selector),
			sqlgraph.To(llminteraction.Table, llminteraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.LlmInteractionTable, timelineevent.LlmInteractionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMcpInteraction chains the current query on the "mcp_interaction" edge.
func (_q *TimelineEventQuery) QueryMcpInteraction() *MCPInteractionQuery {
	query := (&MCPInteractionClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timelineevent.Table, timelineevent.FieldID, selector),
			sqlgraph.To(mcpinteraction.Table, mcpinteraction.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timelineevent.McpInteractionTable, timelineevent.McpInteractionColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TimelineEvent entity from the query.
// Returns a *NotFoundError when no TimelineEvent was found.
func (_q *TimelineEventQuery) First(ctx context.Context) (*TimelineEvent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{timelineevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TimelineEventQuery) FirstX(ctx context.Context) *TimelineEvent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TimelineEvent ID from the query.
// Returns a *NotFoundError when no TimelineEvent ID was found.
func (_q *TimelineEventQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{timelineevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TimelineEventQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TimelineEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TimelineEvent entity is found.
// Returns a *NotFoundError when no TimelineEvent entities are found.
func (_q *TimelineEventQuery) Only(ctx context.Context) (*TimelineEvent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{timelineevent.Label}
	default:
		return nil, &NotSingularError{timelineevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TimelineEventQuery) OnlyX(ctx context.Context) *TimelineEvent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TimelineEvent ID in the query.
// Returns a *NotSingularError when more than one TimelineEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TimelineEventQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{timelineevent.Label}
	default:
		err = &NotSingularError{timelineevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TimelineEventQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TimelineEvents.
func (_q *TimelineEventQuery) All(ctx context.Context) ([]*TimelineEvent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TimelineEvent, *TimelineEventQuery]()
	return withInterceptors[[]*TimelineEvent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TimelineEventQuery) AllX(ctx context.Context) []*TimelineEvent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TimelineEvent IDs.
func (_q *TimelineEventQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(timelineevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TimelineEventQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TimelineEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TimelineEventQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TimelineEventQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TimelineEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TimelineEventQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TimelineEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TimelineEventQuery) Clone() *TimelineEventQuery {
	if _q == nil {
		return nil
	}
	return &TimelineEventQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]timelineevent.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.TimelineEvent{}, _q.predicates...),
		withSession:        _q.withSession.Clone(),
		withStageExecution: _q.withStageExecution.Clone(),
		withLlmInteraction: _q.withLlmInteraction.Clone(),
		withMcpInteraction: _q.withMcpInteraction.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSession tells the query-builder to eager-load the nodes that are connected to
// the "session" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TimelineEventQuery) WithSession(opts ...func(*AlertSessionQuery)) *TimelineEventQuery {
	query := (&AlertSessionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSession = query
	return _q
}

// WithStageExecution tells the query-builder to eager-load the nodes that are connected to
// the "stage_execution" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TimelineEventQuery) WithStageExecution(opts ...func(*StageExecutionQuery)) *TimelineEventQuery {
	query := (&StageExecutionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStageExecution = query
	return _q
}

// WithLlmInteraction tells the query-builder to eager-load the nodes that are connected to
// the "llm_interaction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TimelineEventQuery) WithLlmInteraction(opts ...func(*LLMInteractionQuery)) *TimelineEventQuery {
	query := (&LLMInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLlmInteraction = query
	return _q
}

// WithMcpInteraction tells the query-builder to eager-load the nodes that are connected to
// the "mcp_interaction" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TimelineEventQuery) WithMcpInteraction(opts ...func(*MCPInteractionQuery)) *TimelineEventQuery {
	query := (&MCPInteractionClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMcpInteraction = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TimelineEvent.Query().
//		GroupBy(timelineevent.FieldSessionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TimelineEventQuery) GroupBy(field string, fields ...string) *TimelineEventGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TimelineEventGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = timelineevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SessionID string `json:"session_id,omitempty"`
//	}
//
//	client.TimelineEvent.Query().
//		Select(timelineevent.FieldSessionID).
//		Scan(ctx, &v)
func (_q *TimelineEventQuery) Select(fields ...string) *TimelineEventSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TimelineEventSelect{TimelineEventQuery: _q}
	sbuild.label = timelineevent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TimelineEventSelect configured with the given aggregations.
func (_q *TimelineEventQuery) Aggregate(fns ...AggregateFunc) *TimelineEventSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TimelineEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !timelineevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TimelineEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TimelineEvent, error) {
	var (
		nodes       = []*TimelineEvent{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withSession != nil,
			_q.withStageExecution != nil,
			_q.withLlmInteraction != nil,
			_q.withMcpInteraction != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TimelineEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TimelineEvent{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSession; query != nil {
		if err := _q.loadSession(ctx, query, nodes, nil,
			func(n *TimelineEvent, e *AlertSession) { n.Edges.Session = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStageExecution; query != nil {
		if err := _q.loadStageExecution(ctx, query, nodes, nil,
			func(n *TimelineEvent, e *StageExecution) { n.Edges.StageExecution = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLlmInteraction; query != nil {
		if err := _q.loadLlmInteraction(ctx, query, nodes, nil,
			func(n *TimelineEvent, e *LLMInteraction) { n.Edges.LlmInteraction = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMcpInteraction; query != nil {
		if err := _q.loadMcpInteraction(ctx, query, nodes, nil,
			func(n *TimelineEvent, e *MCPInteraction) { n.Edges.McpInteraction = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TimelineEventQuery) loadSession(ctx context.Context, query *AlertSessionQuery, nodes []*TimelineEvent, init func(*TimelineEvent), assign func(*TimelineEvent, *AlertSession)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TimelineEvent)
	for i := range nodes {
		fk := nodes[i].SessionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(alertsession.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "session_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TimelineEventQuery) loadStageExecution(ctx context.Context, query *StageExecutionQuery, nodes []*TimelineEvent, init func(*TimelineEvent), assign func(*TimelineEvent, *StageExecution)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TimelineEvent)
	for i := range nodes {
		if nodes[i].ExecutionID == nil {
			continue
		}
		fk := *nodes[i].ExecutionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(stageexecution.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "execution_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TimelineEventQuery) loadLlmInteraction(ctx context.Context, query *LLMInteractionQuery, nodes []*TimelineEvent, init func(*TimelineEvent), assign func(*TimelineEvent, *LLMInteraction)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TimelineEvent)
	for i := range nodes {
		if nodes[i].LlmInteractionID == nil {
			continue
		}
		fk := *nodes[i].LlmInteractionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(llminteraction.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "llm_interaction_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TimelineEventQuery) loadMcpInteraction(ctx context.Context, query *MCPInteractionQuery, nodes []*TimelineEvent, init func(*TimelineEvent), assign func(*TimelineEvent, *MCPInteraction)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TimelineEvent)
	for i := range nodes {
		if nodes[i].McpInteractionID == nil {
			continue
		}
		fk := *nodes[i].McpInteractionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(mcpinteraction.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "mcp_interaction_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TimelineEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TimelineEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(timelineevent.Table, timelineevent.Columns, sqlgraph.NewFieldSpec(timelineevent.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timelineevent.FieldID)
		for i := range fields {
			if fields[i] != timelineevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSession != nil {
			_spec.Node.AddColumnOnce(timelineevent.FieldSessionID)
		}
		if _q.withStageExecution != nil {
			_spec.Node.AddColumnOnce(timelineevent.FieldExecutionID)
		}
		if _q.withLlmInteraction != nil {
			_spec.Node.AddColumnOnce(timelineevent.FieldLlmInteractionID)
		}
		if _q.withMcpInteraction != nil {
			_spec.Node.AddColumnOnce(timelineevent.FieldMcpInteractionID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TimelineEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(timelineevent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = timelineevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *TimelineEventQuery) ForUpdate(opts ...sql.LockOption) *TimelineEventQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *TimelineEventQuery) ForShare(opts ...sql.LockOption) *TimelineEventQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// TimelineEventGroupBy is the group-by builder for TimelineEvent entities.
type TimelineEventGroupBy struct {
	selector
	build *TimelineEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TimelineEventGroupBy) Aggregate(fns ...AggregateFunc) *TimelineEventGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TimelineEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TimelineEventQuery, *TimelineEventGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TimelineEventGroupBy) sqlScan(ctx context.Context, root *TimelineEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TimelineEventSelect is the builder for selecting fields of TimelineEvent entities.
type TimelineEventSelect struct {
	*TimelineEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TimelineEventSelect) Aggregate(fns ...AggregateFunc) *TimelineEventSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TimelineEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TimelineEventQuery, *TimelineEventSelect](ctx, _s.TimelineEventQuery, _s, _s.inters, v)
}

func (_s *TimelineEventSelect) sqlScan(ctx context.Context, root *TimelineEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
