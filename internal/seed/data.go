package seed

import "github.com/angelmondragon/shopinsights-backend/internal/tenants"

var sampleTenants = []tenants.CreateInput{
	{Name: "Acme Store", ShopifyDomain: "acme-store.myshopify.com", ShopifyAccessToken: "shpat_abc123def456ghi789jkl012mno345pqr678"},
	{Name: "Fashion Boutique", ShopifyDomain: "fashion-boutique.myshopify.com", ShopifyAccessToken: "shpat_xyz789uvw456rst123opq890lmn567ijk234"},
	{Name: "Tech Gadgets", ShopifyDomain: "tech-gadgets.myshopify.com", ShopifyAccessToken: "shpat_qwe321rty654uio987asd210fgh543jkl876"},
}

var firstNames = []string{
	"Olivia", "Liam", "Emma", "Noah", "Ava", "Mateo", "Sofia", "Lucas",
	"Mia", "Ethan", "Isabella", "James", "Amara", "Hiro", "Priya", "Diego",
}

var lastNames = []string{
	"Smith", "Garcia", "Johnson", "Nguyen", "Brown", "Martinez", "Kim", "Patel",
	"Lopez", "Wilson", "Anderson", "Okafor", "Rossi", "Tanaka", "Silva", "Moore",
}

// productCatalog is keyed by tenant domain so each store sells something plausible.
var productCatalog = map[string][]string{
	"acme-store.myshopify.com": {
		"Classic Coffee Mug", "Stainless Water Bottle", "Canvas Tote Bag", "Desk Organizer",
		"Scented Candle", "Notebook Set", "Wall Clock", "Throw Blanket",
	},
	"fashion-boutique.myshopify.com": {
		"Linen Shirt", "Wool Scarf", "Leather Belt", "Silk Blouse",
		"Denim Jacket", "Ankle Boots", "Summer Dress", "Cashmere Sweater",
	},
	"tech-gadgets.myshopify.com": {
		"Wireless Earbuds", "USB-C Hub", "Mechanical Keyboard", "Portable Charger",
		"Smart Watch", "Bluetooth Speaker", "Webcam HD", "Laptop Stand",
	},
}
