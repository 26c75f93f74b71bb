package storage

import "github.com/xeipuuv/gojsonschema"

// sessionSchemaJSON validates stored session files on load. The store is
// external; validating here turns a corrupted file into an explicit
// data-access error instead of a silently empty gap list.
const sessionSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "answers"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "readinessScore": { "type": "number" },
    "answers": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["question"],
        "properties": {
          "coverage": { "type": "number", "minimum": 0, "maximum": 1 },
          "answerValue": { "type": "string" },
          "notes": { "type": "string" },
          "question": {
            "type": "object",
            "required": ["id", "dimension"],
            "properties": {
              "id": { "type": "string", "minLength": 1 },
              "text": { "type": "string" },
              "severityWeight": { "type": "number", "minimum": 0, "maximum": 1 },
              "bestPractice": { "type": "string" },
              "practicalExplainer": { "type": "string" },
              "standardRefs": { "type": "string" },
              "dimension": {
                "type": "object",
                "required": ["key"],
                "properties": {
                  "key": { "type": "string", "minLength": 1 },
                  "name": { "type": "string" }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var sessionSchemaLoader = gojsonschema.NewStringLoader(sessionSchemaJSON)
