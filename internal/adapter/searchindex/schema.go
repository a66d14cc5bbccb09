package searchindex

// Index definition types mirroring the search service's REST representation.

const (
	TypeString           = "Edm.String"
	TypeDouble           = "Edm.Double"
	TypeInt32            = "Edm.Int32"
	TypeStringCollection = "Collection(Edm.String)"
	TypeSingleCollection = "Collection(Edm.Single)"
)

const (
	// VectorProfileName is the vector search profile assigned to the
	// embedding field.
	VectorProfileName = "embedding-profile"

	// HNSWConfigName is the HNSW algorithm configuration referenced by the
	// vector profile.
	HNSWConfigName = "hnsw-config"

	// SemanticConfigName is the semantic ranking configuration for product
	// queries.
	SemanticConfigName = "products-semantic-config"
)

// Index is the declarative index definition sent to the service.
type Index struct {
	Name         string          `json:"name"`
	Fields       []Field         `json:"fields"`
	VectorSearch *VectorSearch   `json:"vectorSearch,omitempty"`
	Semantic     *SemanticSearch `json:"semantic,omitempty"`
}

// Field describes one index field and its attributes.
type Field struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	Key                 bool   `json:"key"`
	Searchable          bool   `json:"searchable"`
	Filterable          bool   `json:"filterable"`
	Sortable            bool   `json:"sortable"`
	Facetable           bool   `json:"facetable"`
	Dimensions          int    `json:"dimensions,omitempty"`
	VectorSearchProfile string `json:"vectorSearchProfile,omitempty"`
}

// VectorSearch holds the vector algorithm and profile configuration.
type VectorSearch struct {
	Algorithms []VectorAlgorithm `json:"algorithms"`
	Profiles   []VectorProfile   `json:"profiles"`
}

// VectorAlgorithm names an approximate-nearest-neighbor configuration.
type VectorAlgorithm struct {
	Name           string          `json:"name"`
	Kind           string          `json:"kind"`
	HNSWParameters *HNSWParameters `json:"hnswParameters,omitempty"`
}

// HNSWParameters tunes the HNSW graph. Zero values defer to service defaults.
type HNSWParameters struct {
	Metric         string `json:"metric"`
	M              int    `json:"m,omitempty"`
	EfConstruction int    `json:"efConstruction,omitempty"`
	EfSearch       int    `json:"efSearch,omitempty"`
}

// VectorProfile binds a field-level profile name to an algorithm.
type VectorProfile struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
}

// SemanticSearch holds semantic ranking configurations.
type SemanticSearch struct {
	DefaultConfiguration string                  `json:"defaultConfiguration,omitempty"`
	Configurations       []SemanticConfiguration `json:"configurations"`
}

// SemanticConfiguration prioritizes fields for semantic ranking.
type SemanticConfiguration struct {
	Name              string                    `json:"name"`
	PrioritizedFields SemanticPrioritizedFields `json:"prioritizedFields"`
}

// SemanticPrioritizedFields selects title, content and keyword fields.
type SemanticPrioritizedFields struct {
	TitleField     *SemanticField  `json:"titleField,omitempty"`
	ContentFields  []SemanticField `json:"prioritizedContentFields,omitempty"`
	KeywordsFields []SemanticField `json:"prioritizedKeywordsFields,omitempty"`
}

// SemanticField names a field within a semantic configuration.
type SemanticField struct {
	FieldName string `json:"fieldName"`
}

// ProductIndexSchema builds the index definition for the product catalog.
// dimensions is the embedding vector length of the model in use.
func ProductIndexSchema(indexName string, dimensions int) Index {
	fields := []Field{
		{
			Name:       "sku",
			Type:       TypeString,
			Key:        true,
			Filterable: true,
			Sortable:   true,
		},
		{
			Name:       "name",
			Type:       TypeString,
			Searchable: true,
			Sortable:   true,
		},
		{
			Name:       "description",
			Type:       TypeString,
			Searchable: true,
		},
		{
			Name:       "price",
			Type:       TypeDouble,
			Filterable: true,
			Sortable:   true,
			Facetable:  true,
		},
		{
			Name:       "stock_level",
			Type:       TypeInt32,
			Filterable: true,
			Sortable:   true,
			Facetable:  true,
		},
		{
			Name:       "categories",
			Type:       TypeStringCollection,
			Searchable: true,
			Filterable: true,
			Facetable:  true,
		},
		{
			Name:                "embedding",
			Type:                TypeSingleCollection,
			Searchable:          true,
			Dimensions:          dimensions,
			VectorSearchProfile: VectorProfileName,
		},
	}

	vectorSearch := &VectorSearch{
		Algorithms: []VectorAlgorithm{
			{
				Name:           HNSWConfigName,
				Kind:           "hnsw",
				HNSWParameters: &HNSWParameters{Metric: "cosine"},
			},
		},
		Profiles: []VectorProfile{
			{
				Name:      VectorProfileName,
				Algorithm: HNSWConfigName,
			},
		},
	}

	semantic := &SemanticSearch{
		DefaultConfiguration: SemanticConfigName,
		Configurations: []SemanticConfiguration{
			{
				Name: SemanticConfigName,
				PrioritizedFields: SemanticPrioritizedFields{
					TitleField:     &SemanticField{FieldName: "name"},
					ContentFields:  []SemanticField{{FieldName: "description"}},
					KeywordsFields: []SemanticField{{FieldName: "categories"}},
				},
			},
		},
	}

	return Index{
		Name:         indexName,
		Fields:       fields,
		VectorSearch: vectorSearch,
		Semantic:     semantic,
	}
}
