package session

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/creativesuite/internal/client/models"
	"github.com/dmitrijs2005/creativesuite/internal/common"
	"github.com/xeipuuv/gojsonschema"
)

// recordSchema describes a well-formed session record. Extra fields are
// tolerated.
const recordSchema = `{
  "type": "object",
  "required": ["username"],
  "properties": {
    "username": {"type": "string", "minLength": 1}
  }
}`

var schema = mustCompile(recordSchema)

func mustCompile(s string) *gojsonschema.Schema {
	sc, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("session: bad record schema: %v", err))
	}
	return sc
}

// decodeRecord parses a stored session record. Anything that is not a JSON
// object with a non-empty string "username" is reported as
// common.ErrCorruptSessionRecord.
func decodeRecord(raw []byte) (models.Session, error) {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", common.ErrCorruptSessionRecord, err)
	}
	if !res.Valid() {
		return models.Session{}, fmt.Errorf("%w: %v", common.ErrCorruptSessionRecord, res.Errors())
	}

	var s models.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", common.ErrCorruptSessionRecord, err)
	}
	return s, nil
}

func encodeRecord(username string) ([]byte, error) {
	return json.Marshal(models.Session{Username: username})
}
