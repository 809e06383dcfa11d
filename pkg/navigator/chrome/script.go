package chrome

import (
	"encoding/json"
	"fmt"
)

// snapshotJS reads navigator data and tests each name on window and
// document.body. The result matches navigator.Snapshot's JSON form.
const snapshotJS = `(() => {
  const names = %s;
  const body = document.body || {};
  return {
    userAgent: navigator.userAgent,
    platform: navigator.platform,
    plugins: Array.from(navigator.plugins || [], p => ({ name: p.name, description: p.description })),
    globals: names.filter(n => n in window),
    bodyProperties: names.filter(n => n in body),
  };
})()`

// addClassesJS adds tokens to the root element's classList.
const addClassesJS = `(() => {
  document.documentElement.classList.add(...%s);
  return document.documentElement.classList.length;
})()`

func buildSnapshotScript(names []string) (string, error) {
	return withJSONArg(snapshotJS, names)
}

func buildAddClassesScript(classes []string) (string, error) {
	return withJSONArg(addClassesJS, classes)
}

func withJSONArg(format string, values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	arg, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encoding script argument: %w", err)
	}
	return fmt.Sprintf(format, arg), nil
}
