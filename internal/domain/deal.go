package domain

// Properties são as propriedades de um registro do CRM como o HubSpot as devolve.
// Valores não preenchidos ficam como nil e são serializados como null.
type Properties map[string]*string

// Get retorna o valor da propriedade ou "" quando ausente ou nula.
func (p Properties) Get(name string) string {
	if p == nil {
		return ""
	}

	value, ok := p[name]
	if !ok || value == nil {
		return ""
	}

	return *value
}

// Deal é um negócio do pipeline de vendas.
// CompanyIDs guarda as empresas associadas na ordem em que o CRM as retornou.
type Deal struct {
	ID         string
	Properties Properties
	CompanyIDs []string
}

// FirstCompanyID retorna a primeira empresa associada; as demais são ignoradas.
func (d *Deal) FirstCompanyID() (string, bool) {
	if d == nil || len(d.CompanyIDs) == 0 {
		return "", false
	}
	return d.CompanyIDs[0], true
}

type Company struct {
	ID         string
	Properties Properties
}

// OwnerID é o responsável pela empresa (hubspot_owner_id), vazio quando não há.
func (c *Company) OwnerID() string {
	if c == nil {
		return ""
	}
	return c.Properties.Get(CompanyPropertyOwnerID)
}

type Owner struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

const CompanyPropertyOwnerID = "hubspot_owner_id"

// DealProperties é a lista fixa de propriedades lidas de cada negócio.
var DealProperties = []string{
	"dealname",
	"amount",
	"dealstage",
	"sla_signature_timeframe_is_within_the_upcoming_5_months_",
	"budget_availability_options",
	"identified_deal_blockers_will_not_withhold_contract_signature_within_the_next_4_months",
	"estimated__go_live__date",
	"key_materials_sent_to_prospect",
	"commitment__document_type_",
	"recent_commitment_send_date",
	"site_it_partner",
	"signed_commitment_file",
	"recent_commitment_sig__date",
	"poc_associated",
	"asset_owner_approval___when_applicable___cloned_",
	"budget_approval",
	"contract_term__in_years_",
	"number_of_watches",
	"all_site_watches_have_been_activated_",
	"site_staff_had_a_training_session_",
	"it_approval_received",
	"security_gdpr_approval",
	"block_images_on_watch_",
	"data_lifetime_on_cvs",
	"data_lifetime_on_cloud",
	"handover_date__atp_fulfillment_",
	"contracted_billing_start_date",
}

var CompanyProperties = []string{
	"name",
	CompanyPropertyOwnerID,
	"customer_potential_sites",
	"customer_potential_pools",
}
