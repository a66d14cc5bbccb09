package searchindex

import "testing"

func TestProductIndexSchema_Fields(t *testing.T) {
	schema := ProductIndexSchema("zava-products-index", 3072)

	if schema.Name != "zava-products-index" {
		t.Errorf("expected index name zava-products-index, got %s", schema.Name)
	}

	fields := make(map[string]Field, len(schema.Fields))
	for _, f := range schema.Fields {
		fields[f.Name] = f
	}

	for _, name := range []string{"sku", "name", "description", "price", "stock_level", "categories", "embedding"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("missing field %s", name)
		}
	}
	if len(schema.Fields) != 7 {
		t.Errorf("expected 7 fields, got %d", len(schema.Fields))
	}

	sku := fields["sku"]
	if !sku.Key || !sku.Filterable || !sku.Sortable || sku.Type != TypeString {
		t.Errorf("unexpected sku field attributes: %+v", sku)
	}

	name := fields["name"]
	if !name.Searchable || !name.Sortable || name.Key {
		t.Errorf("unexpected name field attributes: %+v", name)
	}

	price := fields["price"]
	if price.Type != TypeDouble || !price.Filterable || !price.Sortable || !price.Facetable {
		t.Errorf("unexpected price field attributes: %+v", price)
	}

	stock := fields["stock_level"]
	if stock.Type != TypeInt32 || !stock.Filterable || !stock.Sortable || !stock.Facetable {
		t.Errorf("unexpected stock_level field attributes: %+v", stock)
	}

	categories := fields["categories"]
	if categories.Type != TypeStringCollection || !categories.Searchable || !categories.Filterable || !categories.Facetable {
		t.Errorf("unexpected categories field attributes: %+v", categories)
	}

	embedding := fields["embedding"]
	if embedding.Type != TypeSingleCollection {
		t.Errorf("expected embedding type %s, got %s", TypeSingleCollection, embedding.Type)
	}
	if embedding.Dimensions != 3072 {
		t.Errorf("expected dimensions 3072, got %d", embedding.Dimensions)
	}
	if embedding.VectorSearchProfile != VectorProfileName {
		t.Errorf("expected profile %s, got %s", VectorProfileName, embedding.VectorSearchProfile)
	}
}

func TestProductIndexSchema_VectorSearch(t *testing.T) {
	schema := ProductIndexSchema("idx", 1536)

	vs := schema.VectorSearch
	if vs == nil {
		t.Fatal("expected vector search configuration")
	}
	if len(vs.Algorithms) != 1 || len(vs.Profiles) != 1 {
		t.Fatalf("expected one algorithm and one profile, got %d/%d", len(vs.Algorithms), len(vs.Profiles))
	}

	algo := vs.Algorithms[0]
	if algo.Name != HNSWConfigName || algo.Kind != "hnsw" {
		t.Errorf("unexpected algorithm: %+v", algo)
	}
	if algo.HNSWParameters == nil || algo.HNSWParameters.Metric != "cosine" {
		t.Errorf("expected cosine metric, got %+v", algo.HNSWParameters)
	}

	profile := vs.Profiles[0]
	if profile.Name != VectorProfileName || profile.Algorithm != HNSWConfigName {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestProductIndexSchema_Semantic(t *testing.T) {
	schema := ProductIndexSchema("idx", 1536)

	sem := schema.Semantic
	if sem == nil {
		t.Fatal("expected semantic configuration")
	}
	if sem.DefaultConfiguration != SemanticConfigName {
		t.Errorf("expected default configuration %s, got %s", SemanticConfigName, sem.DefaultConfiguration)
	}
	if len(sem.Configurations) != 1 {
		t.Fatalf("expected one semantic configuration, got %d", len(sem.Configurations))
	}

	pf := sem.Configurations[0].PrioritizedFields
	if pf.TitleField == nil || pf.TitleField.FieldName != "name" {
		t.Errorf("expected title field name, got %+v", pf.TitleField)
	}
	if len(pf.ContentFields) != 1 || pf.ContentFields[0].FieldName != "description" {
		t.Errorf("expected content field description, got %+v", pf.ContentFields)
	}
	if len(pf.KeywordsFields) != 1 || pf.KeywordsFields[0].FieldName != "categories" {
		t.Errorf("expected keywords field categories, got %+v", pf.KeywordsFields)
	}
}
