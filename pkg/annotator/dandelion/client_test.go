package dandelion_test

import (
	"context"
	"io"
	"net/http"
	"portal/pkg/annotator/dandelion"
	"portal/pkg/serrors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc, opts ...dandelion.Option) *dandelion.Client {
	return dandelion.New(&http.Client{Transport: fn}, "test-token", opts...)
}

func response(status int, h http.Header, body string) *http.Response {
	if h == nil {
		h = http.Header{}
	}

	return &http.Response{
		StatusCode: status,
		Header:     h,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const okBody = `{
  "time": 3,
  "annotations": [
    {
      "start": 12, "end": 28, "spot": "machine learning", "confidence": 0.82, "id": 233488,
      "title": "Machine learning", "uri": "http://en.wikipedia.org/wiki/Machine_learning",
      "label": "Machine Learning", "abstract": "Machine learning is a field of study",
      "categories": ["Machine learning", "Learning"],
      "types": ["http://dbpedia.org/ontology/AcademicSubject"]
    },
    {
      "start": 40, "end": 47, "spot": "farming", "confidence": 0.64, "title": "Agriculture",
      "label": null, "types": null
    }
  ],
  "lang": "en",
  "timestamp": "2025-01-02T03:04:05.678"
}`

func Test_ParseQuota_success(t *testing.T) {
	h := http.Header{}
	h.Set("X-DL-units", "1.5")
	h.Set("X-DL-units-left", "998.5")
	h.Set("X-DL-units-reset", "2025-01-03 00:00:00 +0000")

	q, err := dandelion.ParseQuota(h)
	require.NoError(t, err)
	require.Equal(t, 1.5, q.Units)
	require.Equal(t, 998.5, q.Remaining)
	require.True(t, q.ResetAt.Equal(time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)))
}

func Test_ParseQuota_missing(t *testing.T) {
	q, err := dandelion.ParseQuota(http.Header{})
	require.NoError(t, err)
	require.True(t, q.ResetAt.IsZero())
	require.Zero(t, q.Remaining)
}

func Test_ParseQuota_badValues(t *testing.T) {
	h := http.Header{}
	h.Set("X-DL-units-left", "lots")
	_, err := dandelion.ParseQuota(h)
	require.Error(t, err)

	h = http.Header{}
	h.Set("X-DL-units-left", "10")
	h.Set("X-DL-units-reset", "tomorrow")
	_, err = dandelion.ParseQuota(h)
	require.Error(t, err)
}

func TestClient_Annotate_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.dandelion.eu", r.URL.Host)
		require.Equal(t, "/datatxt/nex/v1/", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "test-token", r.PostForm.Get("token"))
		require.Equal(t, "en", r.PostForm.Get("lang"))
		require.Equal(t, "0.6", r.PostForm.Get("min_confidence"))
		require.Equal(t, "types,categories,abstract", r.PostForm.Get("include"))
		require.Equal(t, "We apply machine learning to farming.", r.PostForm.Get("text"))

		h := http.Header{}
		h.Set("X-DL-units", "1")
		h.Set("X-DL-units-left", "99")
		h.Set("X-DL-units-reset", "2025-01-03 00:00:00 +0000")

		return response(http.StatusOK, h, okBody), nil
	})

	got, q, err := c.Annotate(context.Background(), "We apply machine learning to farming.", 0.6)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Machine Learning", got[0].Label)
	require.Equal(t, "machine learning", got[0].Spot)
	require.Equal(t, 12, got[0].Start)
	require.Equal(t, 28, got[0].End)
	require.InDelta(t, 0.82, got[0].Confidence, 1e-9)
	require.Equal(t, []string{"Machine learning", "Learning"}, got[0].Categories)
	require.Equal(t, []string{"http://dbpedia.org/ontology/AcademicSubject"}, got[0].Types)
	require.Equal(t, "", got[1].Label)
	require.Equal(t, "Agriculture", got[1].Name())
	require.Nil(t, got[1].Types)
	require.Equal(t, float64(99), q.Remaining)
	require.Equal(t, q, c.Quota())
}

func TestClient_Annotate_customEndpointAndLanguage(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "nlp.example.test", r.URL.Host)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "it", r.PostForm.Get("lang"))

		return response(http.StatusOK, nil, `{"annotations":[]}`), nil
	}, dandelion.WithEndpoint("https://nlp.example.test/nex"), dandelion.WithLanguage("it"))

	got, _, err := c.Annotate(context.Background(), "testo", 0.5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestClient_Annotate_missingToken(t *testing.T) {
	c := dandelion.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("request must not be sent without a token")

		return nil, nil
	})}, "")

	_, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestClient_Annotate_unauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		c := newTestClient(func(*http.Request) (*http.Response, error) {
			return response(status, nil, "invalid token"), nil
		})

		_, _, err := c.Annotate(context.Background(), "text", 0.5)
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
	}
}

func TestClient_Annotate_rateLimited429(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusTooManyRequests, nil, "slow down"), nil
	})

	_, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Contains(t, err.Error(), "slow down")
}

func TestClient_Annotate_failsFastWhenExhausted(t *testing.T) {
	now := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)
	calls := 0
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		calls++
		h := http.Header{}
		h.Set("X-DL-units-left", "0")
		h.Set("X-DL-units-reset", "2025-01-03 00:00:00 +0000")

		return response(http.StatusOK, h, `{"annotations":[]}`), nil
	}, dandelion.WithClock(func() time.Time { return now }))

	_, _, err := c.Annotate(context.Background(), "first", 0.5)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	_, q, err := c.Annotate(context.Background(), "second", 0.5)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
	require.Equal(t, 1, calls)
	require.True(t, q.Exhausted(now))

	// after the reset the client talks to the provider again
	now = now.Add(24 * time.Hour)
	_, _, err = c.Annotate(context.Background(), "third", 0.5)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestClient_Annotate_serverError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusBadGateway, nil, " upstream down \n"), nil
	})

	_, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "upstream down")
	require.Nil(t, serrors.KindOf(err))
}

func TestClient_Annotate_malformedJSON(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusOK, nil, `{"annotations":[{"label": 12}]}`), nil
	})

	_, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not decode response")
}

func TestClient_Annotate_oversizedResponse(t *testing.T) {
	body := `{"annotations":[]}` + strings.Repeat(" ", dandelion.MaxResponseBytes)
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusOK, nil, body), nil
	})

	_, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "response exceeds")
}

func TestClient_Annotate_responseAtLimit(t *testing.T) {
	prefix := `{"annotations":[]}`
	body := prefix + strings.Repeat(" ", dandelion.MaxResponseBytes-len(prefix))
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return response(http.StatusOK, nil, body), nil
	})

	annotations, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.NoError(t, err)
	require.Empty(t, annotations)
}

func TestClient_Annotate_transportError(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	_, _, err := c.Annotate(context.Background(), "text", 0.5)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestClient_Annotate_blankText(t *testing.T) {
	c := newTestClient(func(*http.Request) (*http.Response, error) {
		t.Fatal("blank text must not be sent")

		return nil, nil
	})

	got, _, err := c.Annotate(context.Background(), "   ", 0.5)
	require.NoError(t, err)
	require.Empty(t, got)
}

func Test_DecodeAnnotations_nullAnnotations(t *testing.T) {
	got, err := dandelion.DecodeAnnotations([]byte(`{"annotations":null,"time":1}`))
	require.NoError(t, err)
	require.Empty(t, got)
}
