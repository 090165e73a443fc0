package memory

import "myMediasStore/domain"

// catalogProducts is the full compression-stockings catalog, in display order.
var catalogProducts = []domain.Product{
	{
		Code:          "MC-101",
		Name:          "Media de compresión hasta la rodilla Daily",
		Type:          domain.TypeKneeHigh,
		Compression:   "12-17 mmHg",
		Category:      []string{"daily", "travel"},
		Colors:        []string{"beige", "black"},
		PriceSale:     59.90,
		PriceOriginal: 79.90,
		ImageURL:      "/images/products/mc-101.jpg",
		Description:   "Compresión ligera para uso diario y viajes largos.",
	},
	{
		Code:          "MC-102",
		Name:          "Media deportiva hasta la rodilla Run",
		Type:          domain.TypeKneeHigh,
		Compression:   "12-17 mmHg",
		Category:      []string{"sport"},
		Colors:        []string{"black", "blue"},
		PriceSale:     64.90,
		PriceOriginal: 84.90,
		ImageURL:      "/images/products/mc-102.jpg",
		Description:   "Soporte muscular para corredores y entrenamiento.",
	},
	{
		Code:          "MC-103",
		Name:          "Media médica hasta la rodilla Confort",
		Type:          domain.TypeKneeHigh,
		Compression:   "17-20 mmHg",
		Category:      []string{"medical", "daily"},
		Colors:        []string{"beige", "brown"},
		PriceSale:     74.90,
		PriceOriginal: 94.90,
		ImageURL:      "/images/products/mc-103.jpg",
		Description:   "Compresión moderada para varices leves.",
	},
	{
		Code:          "MC-104",
		Name:          "Media médica hasta la rodilla Forte",
		Type:          domain.TypeKneeHigh,
		Compression:   "20-30 mmHg",
		Category:      []string{"medical"},
		Colors:        []string{"beige"},
		PriceSale:     89.90,
		PriceOriginal: 109.90,
		ImageURL:      "/images/products/mc-104.jpg",
		Description:   "Compresión firme indicada por especialistas.",
	},
	{
		Code:          "MC-105",
		Name:          "Media deportiva hasta la rodilla Trek",
		Type:          domain.TypeKneeHigh,
		Compression:   "17-20 mmHg",
		Category:      []string{"sport", "travel"},
		Colors:        []string{"gray", "green"},
		PriceSale:     69.90,
		PriceOriginal: 89.90,
		ImageURL:      "/images/products/mc-105.jpg",
		Description:   "Para caminatas exigentes y vuelos prolongados.",
	},
	{
		Code:          "MP-201",
		Name:          "Panty de compresión Daily",
		Type:          domain.TypePanty,
		Compression:   "12-17 mmHg",
		Category:      []string{"daily", "maternity"},
		Colors:        []string{"beige", "black"},
		PriceSale:     99.90,
		PriceOriginal: 129.90,
		ImageURL:      "/images/products/mp-201.jpg",
		Description:   "Cobertura completa con compresión suave.",
	},
	{
		Code:          "MP-202",
		Name:          "Panty maternal Mamá",
		Type:          domain.TypePanty,
		Compression:   "17-20 mmHg",
		Category:      []string{"maternity"},
		Colors:        []string{"beige"},
		PriceSale:     109.90,
		PriceOriginal: 139.90,
		ImageURL:      "/images/products/mp-202.jpg",
		Description:   "Diseñada para el embarazo, con panel abdominal.",
	},
	{
		Code:          "MP-203",
		Name:          "Panty médica Forte",
		Type:          domain.TypePanty,
		Compression:   "20-30 mmHg",
		Category:      []string{"medical"},
		Colors:        []string{"beige", "black"},
		PriceSale:     124.90,
		PriceOriginal: 159.90,
		ImageURL:      "/images/products/mp-203.jpg",
		Description:   "Compresión firme de pierna completa.",
	},
	{
		Code:          "MP-204",
		Name:          "Panty de compresión Viaje",
		Type:          domain.TypePanty,
		Compression:   "17-20 mmHg",
		Category:      []string{"daily", "travel"},
		Colors:        []string{"black"},
		PriceSale:     104.90,
		PriceOriginal: 134.90,
		ImageURL:      "/images/products/mp-204.jpg",
		Description:   "Comodidad para jornadas largas fuera de casa.",
	},
	{
		Code:          "MT-301",
		Name:          "Media hasta el muslo Silueta",
		Type:          domain.TypeThighHigh,
		Compression:   "12-17 mmHg",
		Category:      []string{"daily"},
		Colors:        []string{"beige", "black"},
		PriceSale:     84.90,
		PriceOriginal: 104.90,
		ImageURL:      "/images/products/mt-301.jpg",
		Description:   "Compresión ligera con banda de silicona.",
	},
	{
		Code:          "MT-302",
		Name:          "Media hasta el muslo Confort",
		Type:          domain.TypeThighHigh,
		Compression:   "17-20 mmHg",
		Category:      []string{"medical", "daily"},
		Colors:        []string{"beige"},
		PriceSale:     94.90,
		PriceOriginal: 119.90,
		ImageURL:      "/images/products/mt-302.jpg",
		Description:   "Compresión moderada de muslo completo.",
	},
	{
		Code:          "MT-303",
		Name:          "Media hasta el muslo Post-Op",
		Type:          domain.TypeThighHigh,
		Compression:   "20-30 mmHg",
		Category:      []string{"medical", "post-surgery"},
		Colors:        []string{"white", "beige"},
		PriceSale:     114.90,
		PriceOriginal: 144.90,
		ImageURL:      "/images/products/mt-303.jpg",
		Description:   "Indicada para recuperación post-operatoria.",
	},
}
