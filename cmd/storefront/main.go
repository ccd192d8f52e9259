package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"veluxe-store/internal/account"
	"veluxe-store/internal/api"
	"veluxe-store/internal/cart"
	"veluxe-store/internal/catalog"
	"veluxe-store/internal/checkout"
	"veluxe-store/internal/config"
	"veluxe-store/internal/logger"
	"veluxe-store/internal/order"
	"veluxe-store/internal/session"
	"veluxe-store/internal/wishlist"
)

const usage = `usage: storefront <command> [flags]

commands:
  products    list a catalog page (-page, -search, -category, -combos)
  categories  list categories with their subcategories
  product     show one product (-id)
  cart        show the cart for the logged-in user
  wishlist    show the wishlist for the logged-in user
  totals      show checkout totals for the current cart
  orders      list the logged-in user's orders
  order       show one order (-id)
`

// app bundles the wired services so command handlers stay small.
type app struct {
	catalog  *catalog.Service
	fetcher  *catalog.Fetcher
	combos   *catalog.Fetcher
	cart     cart.Service
	wishlist wishlist.Service
	checkout checkout.Service
	orders   order.Service
	account  account.Service
	sess     *session.Session
	pageSize int
}

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	sess := session.New()
	client, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
		Session: sess,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cartSvc := cart.NewService(client, sess)
	a := &app{
		catalog:  catalog.NewService(client),
		fetcher:  catalog.NewFetcher(client),
		combos:   catalog.NewComboFetcher(client),
		cart:     cartSvc,
		wishlist: wishlist.NewService(client, sess, cartSvc),
		checkout: checkout.NewService(client, sess),
		orders:   order.NewService(client, sess),
		account:  account.NewService(client, sess),
		sess:     sess,
		pageSize: cfg.PageSize,
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := logger.WithRequestID(context.Background(), "")
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	if email, password := os.Getenv("STORE_EMAIL"), os.Getenv("STORE_PASSWORD"); email != "" {
		if err := a.account.Login(ctx, email, password); err != nil {
			return fmt.Errorf("login: %w", err)
		}
	}

	switch command {
	case "cart", "wishlist", "totals", "orders", "order":
		if !a.sess.Authenticated() {
			return fmt.Errorf("%s: set STORE_EMAIL and STORE_PASSWORD to sign in", command)
		}
	}

	switch command {
	case "products":
		return a.listProducts(ctx, args)
	case "categories":
		return a.listCategories(ctx)
	case "product":
		return a.showProduct(ctx, args)
	case "cart":
		return a.showCart(ctx)
	case "wishlist":
		return a.showWishlist(ctx)
	case "totals":
		return a.showTotals(ctx)
	case "orders":
		return a.listOrders(ctx)
	case "order":
		return a.showOrder(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) listProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ExitOnError)
	page := fs.Int("page", 1, "page number")
	search := fs.String("search", "", "search term")
	category := fs.Int64("category", 0, "category id")
	combos := fs.Bool("combos", false, "only combo products")
	fs.Parse(args)

	filters := catalog.NewFilterState()
	filters.Search = *search
	if *category != 0 {
		filters.ToggleCategory(*category)
	}

	fetcher := a.fetcher
	if *combos {
		fetcher = a.combos
	}
	result, err := fetcher.FetchPage(ctx, *page, a.pageSize, filters)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tRATING\tSTOCK")
	for _, p := range result.Items {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.1f\t%d\n",
			p.ID, p.Name, p.Price, p.AverageRating, p.RemainingQty)
	}
	w.Flush()
	fmt.Printf("page %d of %d (%d products)\n",
		result.Page.Current, result.Page.TotalPages(), result.Page.Total)
	return nil
}

func (a *app) listCategories(ctx context.Context) error {
	categories, err := a.catalog.Categories(ctx)
	if err != nil {
		return err
	}
	subcategories, err := a.catalog.Subcategories(ctx)
	if err != nil {
		return err
	}

	byParent := make(map[int64][]catalog.Subcategory)
	for _, sc := range subcategories {
		byParent[sc.CategoryID] = append(byParent[sc.CategoryID], sc)
	}
	for _, c := range categories {
		fmt.Printf("%d  %s\n", c.ID, c.Name)
		for _, sc := range byParent[c.ID] {
			fmt.Printf("    %d  %s\n", sc.ID, sc.Name)
		}
	}
	return nil
}

func (a *app) showProduct(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("product", flag.ExitOnError)
	id := fs.Int64("id", 0, "product id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("product: -id is required")
	}

	p, err := a.catalog.Product(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("%s  ₹%.2f\n", p.Name, p.Price)
	fmt.Printf("rating %.1f (%d reviews), %d in stock\n",
		p.AverageRating, p.TotalReviews, p.RemainingQty)
	if p.ShortDescription != "" {
		fmt.Println(p.ShortDescription)
	}
	for _, f := range p.Features {
		fmt.Println("  -", f)
	}
	return nil
}

func (a *app) showCart(ctx context.Context) error {
	if err := a.cart.Refresh(ctx); err != nil {
		return err
	}
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("cart is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPRODUCT\tQTY\tPRICE")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%d\t%.2f\n",
			l.CartID, l.Product.Name, l.Quantity, l.Product.Price)
	}
	return w.Flush()
}

func (a *app) showWishlist(ctx context.Context) error {
	if err := a.wishlist.Refresh(ctx); err != nil {
		return err
	}
	lines := a.wishlist.Lines()
	if len(lines) == 0 {
		fmt.Println("wishlist is empty")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LINE\tPRODUCT\tPRICE")
	for _, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t%.2f\n", l.WishlistID, l.Product.Name, l.Product.Price)
	}
	return w.Flush()
}

func (a *app) showTotals(ctx context.Context) error {
	if err := a.cart.Refresh(ctx); err != nil {
		return err
	}

	basket := checkout.BasketFromCart(a.cart.Lines())
	totals := a.checkout.Totals(basket)
	fmt.Printf("subtotal  %s\n", totals.Subtotal.StringFixed(2))
	fmt.Printf("shipping  %s\n", totals.Shipping.StringFixed(2))
	fmt.Printf("tax       %s\n", totals.Tax.StringFixed(2))
	fmt.Printf("total     %s\n", totals.Total.StringFixed(2))
	return nil
}

func (a *app) listOrders(ctx context.Context) error {
	orders, err := a.orders.ListForUser(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSTATUS\tTOTAL\tPAYMENT")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\n",
			o.ID, o.Status, o.TotalPrice, o.PaymentMethod)
	}
	return w.Flush()
}

func (a *app) showOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("order", flag.ExitOnError)
	id := fs.Int64("id", 0, "order id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("order: -id is required")
	}

	o, err := a.orders.Get(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Printf("order %d  %s\n", o.ID, o.Status)
	for _, item := range o.OrderItems {
		fmt.Printf("  %s x%d  %.2f\n", item.Product.Name, item.Quantity, item.Price)
	}
	fmt.Printf("subtotal %.2f + shipping %.2f + tax %.2f = %.2f\n",
		o.TotalPrice-o.ShippingCharge-o.Tax, o.ShippingCharge, o.Tax, o.TotalPrice)
	return nil
}
