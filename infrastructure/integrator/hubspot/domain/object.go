package hubspotdomain

// Object representa um registro do CRM (deal, company, ...) na API v3 de objetos.
// Propriedades não preenchidas chegam como null, por isso os valores são ponteiros.
type Object struct {
	ID           string                           `json:"id"`
	Properties   map[string]*string               `json:"properties"`
	Associations map[string]AssociationCollection `json:"associations,omitempty"`
	CreatedAt    string                           `json:"createdAt"`
	UpdatedAt    string                           `json:"updatedAt"`
	Archived     bool                             `json:"archived"`
}

// AssociationCollection é o formato das associações retornadas junto com o objeto
// quando a requisição usa o parâmetro associations.
type AssociationCollection struct {
	Results []AssociatedObject `json:"results"`
}

type AssociatedObject struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// AssociatedIDs retorna os ids associados do tipo informado, na ordem do HubSpot.
func (o *Object) AssociatedIDs(objectType string) []string {
	if o == nil || o.Associations == nil {
		return nil
	}

	collection, ok := o.Associations[objectType]
	if !ok {
		return nil
	}

	ids := make([]string, 0, len(collection.Results))
	for _, result := range collection.Results {
		if result.ID != "" {
			ids = append(ids, result.ID)
		}
	}

	return ids
}
