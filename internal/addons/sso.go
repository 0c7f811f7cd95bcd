package addons

import (
	"context"
	"errors"
	"html/template"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/superfly/herokuctl/internal/clierr"
	"github.com/superfly/herokuctl/internal/logger"
	"github.com/superfly/herokuctl/internal/tracing"
)

var errSSONeedsApp = errors.New("opening an add-on via SSO requires an app")

// ssoDocument auto-submits the descriptor's params to its action once the
// page has loaded. Params are expanded from a JSON object so that no value
// is interpolated into markup.
var ssoDocument = template.Must(template.New("sso").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta http-equiv="Content-Type" content="text/html; charset=utf-8" />
    <title>Heroku Add-ons SSO</title>
  </head>

  <body>
    <h3>Opening {{.AddOn}} on {{.App}}...</h3>
    <form method="POST" action="{{.Action}}">
    </form>

    <script type="text/javascript">
      var params = {{.Params}};
      var form = document.forms[0];
      document.addEventListener("DOMContentLoaded", function() {
        Object.keys(params).forEach(function(key) {
          var input = document.createElement("input");
          input.type = "hidden";
          input.name = key;
          input.value = params[key];
          form.appendChild(input);
        });
        form.submit();
      });
    </script>
  </body>
</html>
`))

type ssoDocumentData struct {
	App    string
	AddOn  string
	Action string
	Params map[string]string
}

func (o *Opener) handoff(ctx context.Context, app, addOn string) error {
	if app == "" {
		return clierr.WithSuggestion(errSSONeedsApp, "Specify the app with --app.")
	}

	ctx, span := tracing.StartSpan(ctx, "addons.sso")
	defer span.End()

	sso, err := o.API.GetSSO(ctx, app, addOn)
	if err != nil {
		tracing.RecordError(span, err, "failed to fetch SSO descriptor")
		return err
	}

	span.SetAttributes(attribute.String("sso.method", sso.Method))

	if sso.Method == "get" {
		return o.Browser.Open(ctx, sso.Action)
	}

	path, err := o.writeDocument(ssoDocumentData{
		App:    app,
		AddOn:  addOn,
		Action: sso.Action,
		Params: sso.Params,
	})
	if err != nil {

		tracing.RecordError(span, err, "failed to write SSO document")
		return err
	}

	logger.MaybeFromContext(ctx).Debugf("wrote SSO document to %s", path)

	return o.Browser.Open(ctx, fileURL(path))
}

// writeDocument renders data into a new file in the temporary directory and
// returns its path. Nothing is left behind when rendering fails.
func (o *Opener) writeDocument(data ssoDocumentData) (string, error) {
	if data.Params == nil {
		data.Params = map[string]string{}
	}

	f, err := os.CreateTemp(o.TempDir, "heroku-sso-*.html")
	if err != nil {
		return "", &WriteError{URL: data.Action, Err: err}
	}
	path := f.Name()

	err = ssoDocument.Execute(f, data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(path)

		return "", &WriteError{URL: data.Action, Path: path, Err: err}
	}

	return path, nil
}

func fileURL(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	path = filepath.ToSlash(path)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}

