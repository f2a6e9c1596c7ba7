package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/dentistnoor/DentistFriend-V2-sub000/constants"
	"github.com/dentistnoor/DentistFriend-V2-sub000/db/ent/schema/utils"
	"github.com/dentistnoor/DentistFriend-V2-sub000/internal/entity"
)

type PatientRecord struct{ ent.Schema }

func (PatientRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "patient_records"},
	}
}

func (PatientRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.Time("visit_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("patient_name").NotEmpty(),
		field.String("file_number").NotEmpty(),
		field.Int("age").Optional().Nillable().NonNegative(),
		field.String("gender").Optional(),
		field.String("nationality").Optional().Nillable(),
		field.String("patient_type").Optional().
			Validate(utils.EnumValidator("", string(constants.PatientTypeNew), string(constants.PatientTypeFollowup))),
		field.String("payment_type").
			Validate(utils.EnumValidator(string(constants.PaymentTypeCash), string(constants.PaymentTypeInsurance))),
		field.String("insurance_company").Optional().Nillable(),
		field.JSON("procedures", []entity.ProcedureItem{}),
		field.Float("total_amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("remarks").Optional(),
		field.String("source").Default(string(constants.RecordSourceManual)).
			Validate(utils.EnumValidator(string(constants.RecordSourceOCR), string(constants.RecordSourceManual))),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PatientRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY records -> ONE profile (FK: patient_records.profile_id)
		edge.From("profile", Profile.Type).
			Ref("records").
			Field("profile_id").
			Required().
			Unique(),
	}
}

func (PatientRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "visit_date"),
		index.Fields("profile_id", "file_number"),
	}
}
