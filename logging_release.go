//go:build !pathguide_debug

package pathguide

import "go.uber.org/zap"

var debugLogger = zap.NewNop().Sugar()
