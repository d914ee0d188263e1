//go:build pathguide_debug

package pathguide

import "go.uber.org/zap"

var debugLogger = mustSugaredLogger()

func mustSugaredLogger() *zap.SugaredLogger {
	l, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}
