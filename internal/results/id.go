// Package results persists evaluated cases in the run directory and keeps
// the identity-keyed cache that makes interrupted sweeps restartable.
package results

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/okhalaf/mreval/internal/params"
)

// PointID is the stable identity of a sweep point: a digest over the
// canonical encoding of its override list. Two runs of the same sweep spec
// assign the same ID to the same point, which is what lets a restarted
// sweep skip completed work.
func PointID(overrides []params.Override) string {
	var b strings.Builder
	for _, o := range overrides {
		v, err := json.Marshal(o.Value)
		if err != nil {
			// non-encodable values cannot come from a parsed sweep spec
			v = []byte(fmt.Sprintf("%v", o.Value))
		}
		b.WriteString(o.Field)
		b.WriteByte('=')
		b.Write(v)
		b.WriteByte('\n')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])[:16]
}
