package metrics

import "go.uber.org/fx"

// Module provides HTTP metrics collectors.
var Module = fx.Provide(NewHTTPMetrics)
