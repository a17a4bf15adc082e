package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/recmarket/internal/client/client"
	"github.com/dmitrijs2005/recmarket/internal/common"
	"github.com/dmitrijs2005/recmarket/internal/filex"
	"github.com/dmitrijs2005/recmarket/internal/netx"
)

var (
	readImage      = filex.ReadImage
	uploadToBucket = netx.UploadToPresignedURL
)

var ErrAnonymous = errors.New("anonymous callers cannot log in; provide an identity token")

func (a *App) Login(ctx context.Context) error {
	if a.client.IdentityToken() == "" {
		token, err := GetSecret("Enter identity token", a.out)
		if err != nil {
			return err
		}
		a.client.SetIdentityToken(token)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ok, err := a.client.Login(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.client.SetIdentityToken("")
		}
		return err
	}
	if !ok {
		return ErrAnonymous
	}

	a.loggedIn = true
	fmt.Fprintln(a.out, "Logged in as", a.principal())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.client.Logout(ctx); err != nil {
		return err
	}

	a.loggedIn = false
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	list, err := a.client.GetCertificates(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No certificates listed")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOURCE\tPRICE\tOWNER\tCREATED\tIMAGE\tDETAILS")
	for _, c := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.EnergySource, c.PriceText(), c.OwnerText(), c.CreatedAtText(), c.ImageURL, c.Details)
	}
	return tw.Flush()
}

func (a *App) Add(ctx context.Context) error {
	source, err := GetSimpleText(a.reader, "Energy source (e.g. solar, wind)", a.out)
	if err != nil {
		return err
	}
	details, err := GetSimpleText(a.reader, "Details", a.out)
	if err != nil {
		return err
	}
	price, err := GetInt64(a.reader, "Price (integer)", a.out)
	if err != nil {
		return err
	}
	imageURL, err := GetSimpleText(a.reader, "Image URL (optional, see 'image <path>')", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.client.AddCertificate(ctx, source, details, price, imageURL)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Certificate %d added\n", id)
	return nil
}

func (a *App) Image(ctx context.Context, path string) error {
	data, contentType, err := readImage(path)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	up, err := a.client.GetImageUploadURL(ctx, contentType)
	if err != nil {
		return err
	}

	if err := uploadToBucket(ctx, up.UploadURL, contentType, data); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Image uploaded:", up.ImageURL)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	p := a.principal()
	if common.IsAnonymous(p) {
		fmt.Fprintln(a.out, "anonymous")
		return nil
	}
	state := "logged out"
	if a.loggedIn {
		state = "logged in"
	}
	fmt.Fprintf(a.out, "%s (%s)\n", p, state)
	return nil
}
