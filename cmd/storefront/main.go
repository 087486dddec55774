// Command storefront is the interactive collaborator driving the state core:
// it restores the cart, then turns stdin lines into dispatch calls. The core
// itself stays a library with no CLI surface of its own.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	ctx := context.Background()

	option := config.NewOptions()
	option.ParseFlags()

	nLogger, err := logger.New(option.LogLevel())
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}

	repo, err := newRepository(ctx, option, nLogger)
	if err != nil {
		return fmt.Errorf("newRepository: %w", err)
	}

	s := store.New(ctx, catalog.Default(), option.OwnerID(), repo, nLogger)

	fmt.Printf("storefront: owner %s, %d items in cart. Type 'help'.\n",
		s.Cart().OwnerID, s.Cart().TotalQuantity)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		if quit := dispatch(s, scanner.Text()); quit {
			return nil
		}
	}
}

// newRepository picks Postgres when a DSN is configured, file-based otherwise.
func newRepository(ctx context.Context, option *config.Options, nLogger *logger.Logger) (port.CartRepository, error) {
	if dsn := option.DatabaseDSN(); dsn != "" {
		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}

		nLogger.Info("using postgres cart persistence")
		return repository.NewCart(pool)
	}

	nLogger.Info("using file cart persistence", zap.String("dir", option.CartDir()))
	return repository.NewFile(option.CartDir())
}

func dispatch(s *store.Store, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		printHelp()
	case "list":
		printProducts(s.VisibleProducts())
	case "cart":
		printCart(s)
	case "add":
		withID(args, func(id int64) {
			if p, ok := s.Product(id); ok {
				s.AddItem(cart.FromProduct(p))
				return
			}
			fmt.Println("no such product")
		})
	case "rm":
		withID(args, s.RemoveItem)
	case "qty":
		if len(args) < 2 {
			fmt.Println("usage: qty <id> <quantity>")
			return false
		}
		withID(args[:1], func(id int64) {
			// the quantity stays raw: the core normalizes it
			s.UpdateQuantity(id, args[1])
		})
	case "clearcart":
		s.ClearCart()
	case "search":
		s.SetSearchTerm(strings.Join(args, " "))
		printProducts(s.VisibleProducts())
	case "category":
		s.SetSelectedCategories(args...)
		printProducts(s.VisibleProducts())
	case "price":
		if len(args) < 2 {
			fmt.Println("usage: price <min> <max>")
			return false
		}
		min, errMin := decimal.NewFromString(args[0])
		max, errMax := decimal.NewFromString(args[1])
		if errMin != nil || errMax != nil || min.GreaterThan(max) {
			fmt.Println("price bounds must be numbers with min <= max")
			return false
		}
		s.SetPriceRange(min, max)
		printProducts(s.VisibleProducts())
	case "sort":
		if len(args) == 1 {
			s.SetSortBy(args[0])
		}
	case "clearfilters":
		s.ClearFilters()
		printProducts(s.VisibleProducts())
	case "checkout":
		printCheckout(s)
	case "quit", "exit":
		return true
	default:
		fmt.Println("unknown command, try 'help'")
	}

	return false
}

func withID(args []string, fn func(id int64)) {
	if len(args) < 1 {
		fmt.Println("product id required")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("product id must be an integer")
		return
	}

	fn(id)
}

func printHelp() {
	fmt.Println(`list                      show visible products
add <id>                  add product to cart
rm <id>                   remove cart line
qty <id> <quantity>       set line quantity
cart                      show cart
clearcart                 empty the cart
search <text>             filter by title
category <name...>        filter by categories ("All" clears)
price <min> <max>         filter by price range
sort <key>                set sort key
clearfilters              reset all filters
checkout                  show totals with tax
quit`)
}

func printProducts(products []domain.Product) {
	if len(products) == 0 {
		fmt.Println("no products match the current filters")
		return
	}

	for _, p := range products {
		fmt.Printf("%3d  %-20s %-12s %10s  %.1f★ (%d)\n",
			p.ID, p.Title, p.Category, p.Price.Display(), p.Rating, p.Reviews)
	}
}

func printCart(s *store.Store) {
	c := s.Cart()
	if len(c.Items) == 0 {
		fmt.Println("cart is empty")
		return
	}

	for _, item := range c.Items {
		fmt.Printf("%3d  %-20s x%-3d %10s = %s\n",
			item.ProductID, item.Title, item.Quantity,
			item.Price.Display(), item.LineTotal.Display())
	}
	fmt.Printf("total: %d items, %s\n", c.TotalQuantity, c.TotalAmount.Display())
}

func printCheckout(s *store.Store) {
	c := s.Cart()
	fmt.Printf("subtotal:    %s\n", c.TotalAmount.Display())
	fmt.Printf("tax (8%%):    %s\n", c.Tax().Display())
	fmt.Printf("grand total: %s\n", c.GrandTotal().Display())
}
