// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/Dipin-Adhikari/akshara/ent/attemptevent"
	"github.com/Dipin-Adhikari/akshara/ent/contentitem"
	"github.com/Dipin-Adhikari/akshara/ent/learner"
	"github.com/Dipin-Adhikari/akshara/ent/schema"
	"github.com/Dipin-Adhikari/akshara/ent/storyrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[0].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescModuleID is the schema descriptor for module_id field.
	attempteventDescModuleID := attempteventFields[1].Descriptor()
	// attemptevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	attemptevent.ModuleIDValidator = attempteventDescModuleID.Validators[0].(func(string) error)
	// attempteventDescLevel is the schema descriptor for level field.
	attempteventDescLevel := attempteventFields[2].Descriptor()
	// attemptevent.DefaultLevel holds the default value on creation for the level field.
	attemptevent.DefaultLevel = attempteventDescLevel.Default.(int)
	// attempteventDescEpoch is the schema descriptor for epoch field.
	attempteventDescEpoch := attempteventFields[3].Descriptor()
	// attemptevent.DefaultEpoch holds the default value on creation for the epoch field.
	attemptevent.DefaultEpoch = attempteventDescEpoch.Default.(int)
	// attempteventDescQuestionType is the schema descriptor for question_type field.
	attempteventDescQuestionType := attempteventFields[4].Descriptor()
	// attemptevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	attemptevent.QuestionTypeValidator = attempteventDescQuestionType.Validators[0].(func(string) error)
	// attempteventDescRiskWeight is the schema descriptor for risk_weight field.
	attempteventDescRiskWeight := attempteventFields[8].Descriptor()
	// attemptevent.DefaultRiskWeight holds the default value on creation for the risk_weight field.
	attemptevent.DefaultRiskWeight = attempteventDescRiskWeight.Default.(int)
	// attempteventDescResponseTimeMs is the schema descriptor for response_time_ms field.
	attempteventDescResponseTimeMs := attempteventFields[9].Descriptor()
	// attemptevent.DefaultResponseTimeMs holds the default value on creation for the response_time_ms field.
	attemptevent.DefaultResponseTimeMs = attempteventDescResponseTimeMs.Default.(int)
	contentitemFields := schema.ContentItem{}.Fields()
	_ = contentitemFields
	// contentitemDescModuleID is the schema descriptor for module_id field.
	contentitemDescModuleID := contentitemFields[0].Descriptor()
	// contentitem.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	contentitem.ModuleIDValidator = contentitemDescModuleID.Validators[0].(func(string) error)
	// contentitemDescLevel is the schema descriptor for level field.
	contentitemDescLevel := contentitemFields[1].Descriptor()
	// contentitem.DefaultLevel holds the default value on creation for the level field.
	contentitem.DefaultLevel = contentitemDescLevel.Default.(int)
	// contentitemDescEpoch is the schema descriptor for epoch field.
	contentitemDescEpoch := contentitemFields[2].Descriptor()
	// contentitem.DefaultEpoch holds the default value on creation for the epoch field.
	contentitem.DefaultEpoch = contentitemDescEpoch.Default.(int)
	// contentitemDescKind is the schema descriptor for kind field.
	contentitemDescKind := contentitemFields[3].Descriptor()
	// contentitem.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	contentitem.KindValidator = contentitemDescKind.Validators[0].(func(string) error)
	// contentitemDescActive is the schema descriptor for active field.
	contentitemDescActive := contentitemFields[5].Descriptor()
	// contentitem.DefaultActive holds the default value on creation for the active field.
	contentitem.DefaultActive = contentitemDescActive.Default.(bool)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescUserID is the schema descriptor for user_id field.
	learnerDescUserID := learnerFields[0].Descriptor()
	// learner.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learner.UserIDValidator = learnerDescUserID.Validators[0].(func(string) error)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[2].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	storyrecordFields := schema.StoryRecord{}.Fields()
	_ = storyrecordFields
	// storyrecordDescUserID is the schema descriptor for user_id field.
	storyrecordDescUserID := storyrecordFields[0].Descriptor()
	// storyrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	storyrecord.UserIDValidator = storyrecordDescUserID.Validators[0].(func(string) error)
	// storyrecordDescGeneratedAt is the schema descriptor for generated_at field.
	storyrecordDescGeneratedAt := storyrecordFields[3].Descriptor()
	// storyrecord.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	storyrecord.DefaultGeneratedAt = storyrecordDescGeneratedAt.Default.(func() time.Time)
	// storyrecord.UpdateDefaultGeneratedAt holds the default value on update for the generated_at field.
	storyrecord.UpdateDefaultGeneratedAt = storyrecordDescGeneratedAt.UpdateDefault.(func() time.Time)
}
