package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/dmitrymomot/spaserver/core/handler"
)

// mux is the private implementation of Router interface.
type mux[C handler.Context] struct {
	handlers     map[string]handler.HandlerFunc[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		handlers:     make(map[string]handler.HandlerFunc[C]),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			// Only *Context can be built without a factory
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Can't send error response, just log the panic
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	fn, ok := m.handlers[r.Method]
	if !ok {
		if len(m.handlers) == 0 {
			m.errorHandler(ctx, ErrNotFound)
			return
		}
		// Set Allow header per RFC 9110 before responding with 405
		ww.Header().Set("Allow", strings.Join(m.Methods(), ", "))
		m.errorHandler(ctx, ErrMethodNotAllowed)
		return
	}

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	// Middleware may have replaced the request to carry context values
	if err := response(ww, ctx.Request()); err != nil {
		m.errorHandler(ctx, err)
	}
}

// Get registers h for GET requests.
func (m *mux[C]) Get(h handler.HandlerFunc[C]) {
	m.Method(h, http.MethodGet)
}

// Head registers h for HEAD requests.
func (m *mux[C]) Head(h handler.HandlerFunc[C]) {
	m.Method(h, http.MethodHead)
}

// Method registers h for each of the given methods.
// Panics on unknown methods or a nil handler.
func (m *mux[C]) Method(h handler.HandlerFunc[C], methods ...string) {
	if h == nil {
		panic(ErrNilHandler)
	}
	for _, method := range methods {
		method = strings.ToUpper(method)
		if !slices.Contains(knownMethods, method) {
			panic(fmt.Errorf("%w: '%s'", ErrInvalidMethod, method))
		}
		m.handlers[method] = h
	}
}

// Use appends middlewares to the chain. The first middleware runs first.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// Methods returns the registered methods in sorted order.
func (m *mux[C]) Methods() []string {
	methods := make([]string, 0, len(m.handlers))
	for method := range m.handlers {
		methods = append(methods, method)
	}
	slices.Sort(methods)
	return methods
}

var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodConnect,
	http.MethodOptions,
	http.MethodTrace,
}
