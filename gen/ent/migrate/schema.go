// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PatientRecordsColumns holds the columns for the "patient_records" table.
	PatientRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "visit_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "patient_name", Type: field.TypeString},
		{Name: "file_number", Type: field.TypeString},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "nationality", Type: field.TypeString, Nullable: true},
		{Name: "patient_type", Type: field.TypeString, Nullable: true},
		{Name: "payment_type", Type: field.TypeString},
		{Name: "insurance_company", Type: field.TypeString, Nullable: true},
		{Name: "procedures", Type: field.TypeJSON},
		{Name: "total_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "remarks", Type: field.TypeString, Nullable: true},
		{Name: "source", Type: field.TypeString, Default: "MANUAL"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// PatientRecordsTable holds the schema information for the "patient_records" table.
	PatientRecordsTable = &schema.Table{
		Name:       "patient_records",
		Columns:    PatientRecordsColumns,
		PrimaryKey: []*schema.Column{PatientRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_records_profiles_records",
				Columns:    []*schema.Column{PatientRecordsColumns[16]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientrecord_profile_id_visit_date",
				Unique:  false,
				Columns: []*schema.Column{PatientRecordsColumns[16], PatientRecordsColumns[1]},
			},
			{
				Name:    "patientrecord_profile_id_file_number",
				Unique:  false,
				Columns: []*schema.Column{PatientRecordsColumns[16], PatientRecordsColumns[3]},
			},
		},
	}
	// ProcedureTemplatesColumns holds the columns for the "procedure_templates" table.
	ProcedureTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "cash_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "insurance_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ProcedureTemplatesTable holds the schema information for the "procedure_templates" table.
	ProcedureTemplatesTable = &schema.Table{
		Name:       "procedure_templates",
		Columns:    ProcedureTemplatesColumns,
		PrimaryKey: []*schema.Column{ProcedureTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "procedure_templates_profiles_templates",
				Columns:    []*schema.Column{ProcedureTemplatesColumns[6]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "proceduretemplate_profile_id_name",
				Unique:  true,
				Columns: []*schema.Column{ProcedureTemplatesColumns[6], ProcedureTemplatesColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "clinic_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PatientRecordsTable,
		ProcedureTemplatesTable,
		ProfilesTable,
	}
)

func init() {
	PatientRecordsTable.ForeignKeys[0].RefTable = ProfilesTable
	PatientRecordsTable.Annotation = &entsql.Annotation{
		Table: "patient_records",
	}
	ProcedureTemplatesTable.ForeignKeys[0].RefTable = ProfilesTable
	ProcedureTemplatesTable.Annotation = &entsql.Annotation{
		Table: "procedure_templates",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
