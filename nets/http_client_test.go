package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/modes"
	"github.com/reusee/dscope"
)

func TestHTTPClientLocalBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		client HTTPClient,
	) {
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "ok" {
			t.Fatalf("got %q", body)
		}
	})
}
