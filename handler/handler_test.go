package handler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sourcefeed/handler"
	"github.com/dmitrymomot/sourcefeed/pkg/binder"
	"github.com/dmitrymomot/sourcefeed/pkg/cookie"
	"github.com/dmitrymomot/sourcefeed/pkg/logger"
)

type request struct {
	Name     string  `query:"name"`
	Limit    int     `query:"limit"`
	Welcomed *string `cookie:"welcomed"`
}

type failingResponse struct{ err error }

func (f failingResponse) Render(http.ResponseWriter, *http.Request) error { return f.err }

func TestWrap_BindsAndRenders(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req request) handler.Response {
		welcomed := req.Welcomed != nil && *req.Welcomed == "true"
		return handler.JSON(map[string]any{"name": req.Name, "welcomed": welcomed})
	}, handler.WithBinders[handler.Context, request](binder.Query(), binder.Cookie()))

	r := httptest.NewRequest(http.MethodGet, "/?name=otter", nil)
	r.AddCookie(&http.Cookie{Name: "welcomed", Value: "true"})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"name":"otter","welcomed":true}`, w.Body.String())
}

func TestWrap_BindErrorIsBadRequest(t *testing.T) {
	t.Parallel()

	var gotErr error
	h := handler.Wrap(func(ctx handler.Context, req request) handler.Response {
		t.Fatal("handler must not run")
		return nil
	},
		handler.WithBinders[handler.Context, request](binder.Query()),
		handler.WithErrorHandler[handler.Context, request](func(ctx handler.Context, err error) {
			gotErr = err
			handler.DefaultErrorHandler(ctx, err)
		}),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?limit=lots", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad_request\n", w.Body.String())
	assert.ErrorIs(t, gotErr, handler.ErrBadRequest)
	assert.ErrorIs(t, gotErr, binder.ErrFailedToParseQuery)
}

func TestWrap_NilResponse(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req request) handler.Response { return nil })

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error\n", w.Body.String())
}

func TestWrap_RenderError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "http error", err: handler.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "wrapped http error", err: handler.ErrServiceUnavailable.Wrap(errors.New("db")), wantCode: http.StatusServiceUnavailable},
		{name: "plain error", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
				return failingResponse{err: tt.err}
			})
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestWrap_DecoratorOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	mark := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				calls = append(calls, name)
				return next(ctx, req)
			}
		}
	}

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		calls = append(calls, "handler")
		return handler.JSON([]string{})
	}, handler.WithDecorators(mark("outer"), mark("inner")))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner", "handler"}, calls)
}

func TestWrap_ContextCarriesRequestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		assert.Equal(t, "v", ctx.Value(key{}))
		assert.NotNil(t, ctx.Request())
		assert.NotNil(t, ctx.ResponseWriter())
		return handler.JSON(nil)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), key{}, "v"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "null", w.Body.String())
}

func TestNewErrorHandler_Logs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return failingResponse{err: errors.New("store down")}
	}, handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler[handler.Context](log)))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), "store down")
	assert.Contains(t, buf.String(), "/items")
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.JSONWithStatus(http.StatusCreated, []int{1, 2}).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "[1,2]", w.Body.String())
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("plain request", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, handler.Redirect("/welcome").Render(w, httptest.NewRequest(http.MethodGet, "/items", nil)))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/welcome", w.Header().Get("Location"))
	})

	t.Run("explicit code", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, handler.RedirectWithCode("/", http.StatusFound).Render(w, httptest.NewRequest(http.MethodGet, "/x", nil)))
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("datastar request", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/items", nil)
		r.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		require.NoError(t, handler.Redirect("/welcome").Render(w, r))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, w.Body.String(), "/welcome")
		assert.Empty(t, w.Header().Get("Location"))
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	byQuery := httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
	assert.True(t, handler.IsDataStar(byQuery))

	byAccept := httptest.NewRequest(http.MethodGet, "/", nil)
	byAccept.Header.Set("Accept", "text/event-stream")
	assert.True(t, handler.IsDataStar(byAccept))
}

func hello(name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="hello">hello `+templ.EscapeString(name)+`</div>`)
		return err
	})
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("html", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, handler.Templ(hello("<otter>")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `<div id="hello">hello &lt;otter&gt;</div>`, w.Body.String())
	})

	t.Run("status", func(t *testing.T) {
		w := httptest.NewRecorder()
		require.NoError(t, handler.TemplWithStatus(http.StatusNotFound, hello("x")).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("datastar patch", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", "text/event-stream")
		w := httptest.NewRecorder()
		require.NoError(t, handler.Templ(hello("otter"), handler.WithTarget("#hello")).Render(w, r))
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		assert.True(t, strings.Contains(w.Body.String(), "hello otter"))
	})
}

func TestWithCookies(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	resp := handler.WithCookies(handler.Redirect("/"), m,
		handler.Cookie{Name: "welcomed", Value: "true"},
		handler.Cookie{Name: "session", Value: "brave-otter-abcdef"},
	)

	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/welcome", nil)))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, "welcomed", cookies[0].Name)
	assert.Equal(t, "true", cookies[0].Value)
	assert.Equal(t, "session", cookies[1].Name)
	assert.Equal(t, "/", cookies[1].Path)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	plain := handler.JSON(nil)
	assert.Equal(t, plain, handler.WithCookies(plain, m))
}

func TestError(t *testing.T) {
	t.Parallel()

	h := handler.Wrap(func(ctx handler.Context, req struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not_found\n", w.Body.String())
}
