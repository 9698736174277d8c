package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the context span to err, so a reported error can be matched to its log records.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
