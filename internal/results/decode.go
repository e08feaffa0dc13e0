package results

import (
	"github.com/QTest-hq/rtjunit/pkg/model"
)

// promptPaths are the places a case may keep its prompt, highest priority first
var promptPaths = [][]string{
	{"testCase", "vars", "prompt"},
	{"vars", "prompt"},
	{"prompt", "raw"},
}

// Decode builds the typed view of the case record at position idx.
// Scalar fields are read as text; objects and arrays in their place are
// treated as absent.
func Decode(idx int, v Value) model.Case {
	c := model.Case{
		Index:        idx,
		PluginID:     str(v, "metadata", "pluginId"),
		StrategyID:   str(v, "metadata", "strategyId"),
		EncodingType: str(v, "metadata", "encodingType"),
		Reason:       str(v, "gradingResult", "reason"),
		Error:        str(v, "error"),
	}

	for _, path := range promptPaths {
		if p := str(v, path...); p != "" {
			c.Prompt = p
			break
		}
	}

	if ok, isBool := v.Get("success").Bool(); isBool {
		c.Success = ok
	}
	if pass, isBool := v.Get("gradingResult", "pass").Bool(); isBool {
		c.Pass = &pass
	}

	if out := v.Get("response", "output"); out.Truthy() {
		text, isString := out.String()
		if !isString {
			text = out.Indent()
		}
		c.Output = &text
	}

	return c
}

func str(v Value, keys ...string) string {
	return v.Get(keys...).Text()
}
