package hubspotdomain

import "strconv"

// AssociationsResponse é a resposta de GET /crm/v4/objects/{from}/{id}/associations/{to}
type AssociationsResponse struct {
	Results []AssociationResult `json:"results"`
	Paging  *Paging             `json:"paging,omitempty"`
}

type AssociationResult struct {
	ToObjectID       int64             `json:"toObjectId"`
	AssociationTypes []AssociationType `json:"associationTypes"`
}

type AssociationType struct {
	Category string `json:"category"`
	TypeID   int    `json:"typeId"`
	Label    string `json:"label"`
}

type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

type PagingNext struct {
	After string `json:"after"`
	Link  string `json:"link,omitempty"`
}

// IDs converte os toObjectId numéricos da v4 para o formato string usado na v3.
func (r *AssociationsResponse) IDs() []string {
	if r == nil {
		return nil
	}

	ids := make([]string, 0, len(r.Results))
	for _, result := range r.Results {
		ids = append(ids, strconv.FormatInt(result.ToObjectID, 10))
	}

	return ids
}
