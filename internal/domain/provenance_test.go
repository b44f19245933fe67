package domain

import "testing"

func TestClassifyProvenance(t *testing.T) {
	cases := []struct {
		name  string
		order *Order
		want  Provenance
	}{
		{"nil заказ", nil, ProvenanceManual},
		{"обычный заказ", &Order{Notes: "extra napkins"}, ProvenanceManual},
		{"маркер автозаказа в заметках", &Order{Notes: "AUTO-ORDER weekly"}, ProvenanceAutoOrder},
		{"маркер автоприёма в заметках", &Order{Notes: "auto-accepted by scheduler"}, ProvenanceAutoAccepted},
		{"подписка без заметок", &Order{PaymentMethod: "SUBSCRIPTION"}, ProvenanceAutoAccepted},
		{"подписка с заметками", &Order{PaymentMethod: "SUBSCRIPTION", Notes: "call first"}, ProvenanceManual},
		{"пустой заказ", &Order{}, ProvenanceManual},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyProvenance(tc.order); got != tc.want {
				t.Fatalf("ClassifyProvenance: получили %s, ожидали %s", got, tc.want)
			}
		})
	}
}
